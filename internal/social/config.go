package social

import "github.com/2bleO/CoolStff.com/internal/domain"

// Platform is a social network target for caption drafts.
type Platform string

const (
	PlatformFacebook  Platform = "facebook"
	PlatformTwitter   Platform = "twitter"
	PlatformInstagram Platform = "instagram"
	PlatformPinterest Platform = "pinterest"
)

// ImageRequirements describes the image dimensions a platform expects.
type ImageRequirements struct {
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Formats []string `json:"formats"`
}

// PlatformConfig holds the caption templates and image requirements for
// one platform. Templates are keyed by content type; each list holds the
// equally-weighted variants one of which is picked per draft.
type PlatformConfig struct {
	Platform          Platform
	Templates         map[domain.ContentType][]string
	ImageRequirements ImageRequirements
}

// platformConfigs covers the platforms drafts can be generated for.
// Pinterest is a valid Platform value but intentionally has no config, so
// requesting it is rejected rather than producing an empty caption.
var platformConfigs = map[Platform]PlatformConfig{
	PlatformFacebook: {
		Platform: PlatformFacebook,
		Templates: map[domain.ContentType][]string{
			domain.ContentTypeProduct: {
				"🔥 NEW: {title} - Discover this innovative product! 🚀\n\n💰 Only ${price}\n\n#Innovation #TechGadgets #CoolStuff",
				"✨ Featured Product Alert! ✨\n\n{title}\n\nExplore more at coolstff.com 🌟\n\n#Innovation #CoolGadgets",
			},
			domain.ContentTypeArticle: {
				"🎯 {title}\n\nRead more about this amazing concept on coolstff.com! 🔍\n\n#FutureTech #Innovation",
				"🌟 Design of the Future: {title}\n\nDiscover more innovative designs on coolstff.com 🚀\n\n#ConceptualDesign #Innovation",
			},
		},
		ImageRequirements: ImageRequirements{Width: 1200, Height: 630, Formats: []string{"jpg", "png"}},
	},
	PlatformTwitter: {
		Platform: PlatformTwitter,
		Templates: map[domain.ContentType][]string{
			domain.ContentTypeProduct: {
				"🆕 {title}\n\nCheck out this innovative product on coolstff.com!\n\n#Innovation #TechGadgets",
				"Discovered: {title} 🚀\n\nFind more cool stuff at coolstff.com!\n\n#CoolGadgets #Innovation",
			},
			domain.ContentTypeArticle: {
				"🎯 Future of Design: {title}\n\nRead more on coolstff.com\n\n#FutureTech #Innovation",
				"🌟 {title}\n\nExplore this amazing concept on coolstff.com!\n\n#Design #Innovation",
			},
		},
		ImageRequirements: ImageRequirements{Width: 1200, Height: 675, Formats: []string{"jpg", "png"}},
	},
	PlatformInstagram: {
		Platform: PlatformInstagram,
		Templates: map[domain.ContentType][]string{
			domain.ContentTypeProduct: {
				"🚀 Introducing: {title}\n\nDiscover more innovative products like this on coolstff.com (link in bio)\n\n.\n.\n.\n#Innovation #TechGadgets #CoolStuff #FutureTech #Design #TechnologyInnovation",
				"✨ Featured: {title}\n\nFind more amazing products on coolstff.com (link in bio)\n\n.\n.\n.\n#Innovation #ProductDesign #CoolGadgets #TechLovers #FutureDesign",
			},
			domain.ContentTypeArticle: {
				"🎯 {title}\n\nRead the full story on coolstff.com (link in bio)\n\n.\n.\n.\n#ConceptualDesign #FutureTech #Innovation #Design #TechnologyInnovation",
				"🌟 Design Spotlight: {title}\n\nMore innovative designs on coolstff.com (link in bio)\n\n.\n.\n.\n#FutureDesign #Innovation #ConceptArt #ProductDesign #TechInnovation",
			},
		},
		ImageRequirements: ImageRequirements{Width: 1080, Height: 1080, Formats: []string{"jpg", "png"}},
	},
}

// ConfiguredPlatforms returns the platforms with templates, in a fixed
// order so draft fan-out is deterministic.
func ConfiguredPlatforms() []Platform {
	return []Platform{PlatformFacebook, PlatformTwitter, PlatformInstagram}
}

// ConfigFor returns the config for a platform, or false when the platform
// has no templates.
func ConfigFor(platform Platform) (PlatformConfig, bool) {
	cfg, ok := platformConfigs[platform]
	return cfg, ok
}

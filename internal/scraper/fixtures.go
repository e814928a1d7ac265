package scraper

import (
	"strings"

	"github.com/2bleO/CoolStff.com/internal/domain"
)

// Demo fixtures returned when no scrape API endpoint is configured. They
// mirror what a real scrape of each supported site would produce so admin
// flows can be exercised end to end without the downstream worker.

func productFixture(rawURL string) domain.ScrapedContent {
	switch {
	case strings.Contains(rawURL, "amazon.com"):
		return domain.ScrapedContent{
			Type:        domain.ContentTypeProduct,
			Title:       "Smart Light Strip with App Control",
			Description: "LED strip lights with 16 million colors, music sync, and smart home integration. Control with your smartphone app or voice assistants like Alexa and Google Home.",
			Price:       2999,
			Images: []string{
				"https://images.pexels.com/photos/3165335/pexels-photo-3165335.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750",
				"https://images.pexels.com/photos/1293269/pexels-photo-1293269.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750",
			},
			SourceURL: rawURL,
		}
	case strings.Contains(rawURL, "aliexpress.com"):
		return domain.ScrapedContent{
			Type:        domain.ContentTypeProduct,
			Title:       "Portable Neck Fan with 3 Speeds",
			Description: "Wearable neck fan with bladeless design, 3 speeds, and rechargeable battery. Perfect for outdoor activities, sports, and hot summer days.",
			Price:       1995,
			Images: []string{
				"https://images.pexels.com/photos/3780681/pexels-photo-3780681.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750",
				"https://images.pexels.com/photos/4195509/pexels-photo-4195509.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750",
			},
			SourceURL: rawURL,
		}
	default:
		return domain.ScrapedContent{
			Type:        domain.ContentTypeProduct,
			Title:       "Future Tech Product",
			Description: "An innovative product with cutting-edge technology.",
			Price:       4999,
			Images: []string{
				"https://images.pexels.com/photos/1714208/pexels-photo-1714208.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750",
			},
			SourceURL: rawURL,
		}
	}
}

func articleFixture(rawURL string) domain.ScrapedContent {
	switch {
	case strings.Contains(rawURL, "trendhunter.com"):
		return domain.ScrapedContent{
			Type:  domain.ContentTypeArticle,
			Title: "Conceptual Flying Car Design Shows the Future of Urban Transportation",
			Content: "This innovative flying car concept represents a bold vision for the future of urban mobility. Designed by renowned futurist architect Maya Johnson, the vehicle combines vertical take-off and landing capabilities with autonomous driving features.\n\n" +
				"The sleek design incorporates sustainable materials and is powered by next-generation solid-state batteries, giving it an estimated range of 300 miles per charge. What sets this concept apart is its modular approach - the flight module can detach from the ground vehicle, allowing users to switch between air and road travel seamlessly.\n\n" +
				"Urban planners are already considering how such vehicles could transform city infrastructure, potentially reducing the need for traditional roads and parking structures. While commercial production is likely still a decade away, several major aerospace and automotive companies have expressed interest in the technology.",
			Source:    "TrendHunter",
			SourceURL: rawURL,
			CoverImage: "https://images.pexels.com/photos/8539462/pexels-photo-8539462.jpeg" +
				"?auto=compress&cs=tinysrgb&w=1260&h=750",
		}
	case strings.Contains(rawURL, "yankodesign.com"):
		return domain.ScrapedContent{
			Type:  domain.ContentTypeArticle,
			Title: "Expandable Tiny House Concept Triples Living Space with Ingenious Design",
			Content: "This revolutionary tiny house concept has captured the attention of minimalist living enthusiasts worldwide. Created by architectural firm Micro Living Solutions, the 'Expanda Home' can triple its living space at the touch of a button.\n\n" +
				"The 400-square-foot structure features multiple sections that slide out from the main module, transforming a compact living space into a comfortable 1,200-square-foot home with separate areas for living, working, and sleeping.\n\n" +
				"What makes this design particularly remarkable is its focus on sustainability. The house is constructed primarily from recycled materials and incorporates solar panels, rainwater collection, and a composting system. Its modular nature also means it can be transported on a standard truck and assembled in just three days.\n\n" +
				"\"We wanted to challenge the perception that tiny living means sacrificing comfort,\" says lead designer Jordan Chen. \"With smart design and automation, we can create spaces that adapt to our needs rather than forcing us to adapt to fixed spaces.\"\n\n" +
				"The first prototype is currently being tested in Colorado, with plans for commercial availability by late next year. With a projected price point of $95,000, it offers an affordable housing alternative that doesn't compromise on functionality.",
			Source:    "Yanko Design",
			SourceURL: rawURL,
			CoverImage: "https://images.pexels.com/photos/1769342/pexels-photo-1769342.jpeg" +
				"?auto=compress&cs=tinysrgb&w=1260&h=750",
		}
	default:
		return domain.ScrapedContent{
			Type:      domain.ContentTypeArticle,
			Title:     "Innovative Design Concept",
			Content:   "This article showcases an innovative design concept that could change the way we interact with technology.",
			Source:    "Design Blog",
			SourceURL: rawURL,
			CoverImage: "https://images.pexels.com/photos/1779487/pexels-photo-1779487.jpeg" +
				"?auto=compress&cs=tinysrgb&w=1260&h=750",
		}
	}
}

// Package ingest collects commercial listings from the portal's HTML
// search pages and feeds them into the listing repository.
package ingest

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/propstack/rentquant/backend/internal/listings"
)

// ParsePage extracts listings from one search result page.
//
// 포털 HTML 구조: div.listing-card 하나가 매물 하나
//
//	.listing-title          제목
//	.listing-rent           "₹ 60,000 / month"
//	.listing-size           "2,000 sq ft"
//	.listing-carpet         "1,500 sq ft carpet"
//	.listing-type           "Office Space"
//	.listing-location       "Dharampeth, West Zone"
//	.listing-floor          "2 of 4 floors"
//	.listing-deposit        "₹ 1,00,000 deposit"
//	.listing-age            "5 years old"
//	li.facility             사용 가능 설비 (복수)
//	data-property-id        매물 ID (card attribute)
func ParsePage(r io.Reader, city string) ([]listings.Property, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse listing page: %w", err)
	}

	var props []listings.Property
	doc.Find("div.listing-card").Each(func(i int, card *goquery.Selection) {
		id, ok := card.Attr("data-property-id")
		if !ok || strings.TrimSpace(id) == "" {
			return
		}

		p := listings.Property{
			PropertyID:   strings.TrimSpace(id),
			ListingTitle: text(card, ".listing-title"),
			City:         city,
			PropertyType: text(card, ".listing-type"),
			Ownership:    text(card, ".listing-ownership"),
			Negotiable:   text(card, ".listing-negotiable"),
			RentPrice:    money(text(card, ".listing-rent")),
			SizeSqft:     money(text(card, ".listing-size")),
			CarpetAreaSqft: money(text(card, ".listing-carpet")),
			SecurityDeposit: money(text(card, ".listing-deposit")),
			PropertyAge:  money(text(card, ".listing-age")),
			Facilities:   make(map[string]bool),
			Floors:       make(map[string]bool),
		}

		if area, zone, ok := splitLocation(text(card, ".listing-location")); ok {
			p.Area, p.Zone = area, zone
		}
		if floorNo, total, ok := splitFloor(text(card, ".listing-floor")); ok {
			p.FloorNo, p.TotalFloors = floorNo, total
		}

		card.Find("li.facility").Each(func(_ int, li *goquery.Selection) {
			name := listings.NormalizeFacility(li.Text())
			if name != "" {
				p.Facilities[name] = true
			}
		})
		card.Find("li.floor-option").Each(func(_ int, li *goquery.Selection) {
			name := listings.NormalizeFacility(li.Text())
			if name != "" {
				p.Floors[name] = true
			}
		})

		props = append(props, p)
	})

	return props, nil
}

func text(s *goquery.Selection, selector string) string {
	return strings.TrimSpace(s.Find(selector).First().Text())
}

// money pulls the first number out of a formatted amount:
// "₹ 1,00,000 deposit" → 100000
func money(s string) float64 {
	var b strings.Builder
	seen := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			seen = true
		case r == '.' && seen:
			b.WriteRune(r)
		case r == ',':
			// thousands separator, skip
		default:
			if seen {
				v, _ := strconv.ParseFloat(b.String(), 64)
				return v
			}
		}
	}
	if !seen {
		return 0
	}
	v, _ := strconv.ParseFloat(b.String(), 64)
	return v
}

// splitLocation reads "Dharampeth, West Zone"
func splitLocation(s string) (area, zone string, ok bool) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
}

// splitFloor reads "2 of 4 floors"
func splitFloor(s string) (floorNo string, total float64, ok bool) {
	parts := strings.SplitN(s, " of ", 2)
	if len(parts) != 2 {
		return "", 0, false
	}
	total = money(parts[1])
	if total == 0 {
		return "", 0, false
	}
	return strings.TrimSpace(parts[0]), total, true
}

package book

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultAuthor is used when no travel carries a user name.
const DefaultAuthor = "Путешественник"

// BuildFromTravels normalizes raw travel records plus user settings into a
// BookModel. Empty input is allowed; callers guard against exporting an empty
// book themselves.
func BuildFromTravels(travels []TravelForBook, settings BookSettings) BookModel {
	sorted := sortTravels(travels, settings.SortOrder)

	bookTravels := make([]BookTravel, 0, len(sorted))
	for _, t := range sorted {
		bookTravels = append(bookTravels, projectTravel(t))
	}

	model := BookModel{
		Meta: BookMeta{
			Title:       settings.Title,
			Subtitle:    settings.Subtitle,
			Author:      resolveAuthor(sorted),
			Period:      yearPeriod(sorted),
			TravelCount: len(sorted),
			GeneratedAt: time.Now(),
		},
		Travels:  bookTravels,
		Settings: settings,
	}

	if settings.ShareURL != "" {
		model.QR = &QRTarget{URL: settings.ShareURL, Label: "Онлайн-версия"}
	}

	return model
}

// BuildFromArticle produces a one-travel BookModel for single-article export.
func BuildFromArticle(article ArticleModel, settings BookSettings) BookModel {
	travel := TravelForBook{
		ID:          article.ID,
		Name:        article.Title,
		Description: article.Description,
		URL:         article.URL,
		Gallery:     article.Gallery,
		UserName:    article.UserName,
		Year:        article.Year,
	}
	return BuildFromTravels([]TravelForBook{travel}, settings)
}

// projectTravel maps one raw record onto its book projection. The mapping is
// total: missing source fields stay zero-valued so templates interpolate
// deterministically.
func projectTravel(t TravelForBook) BookTravel {
	gallery := make([]BookPhoto, 0, len(t.Gallery))
	for _, g := range t.Gallery {
		if strings.TrimSpace(g.URL) == "" {
			continue
		}
		gallery = append(gallery, BookPhoto{
			URL:       g.URL,
			Caption:   g.Caption,
			ID:        g.ID,
			UpdatedAt: g.UpdatedAt,
		})
	}

	points := make([]BookMapPoint, 0, len(t.Addresses))
	for i, a := range t.Addresses {
		p := BookMapPoint{
			ID:       a.ID,
			Coord:    a.Coord,
			Address:  a.Address,
			Category: a.CategoryName,
			ThumbURL: a.ThumbURL,
		}
		if p.ID == "" {
			p.ID = strconv.Itoa(i)
		}
		if lat, lng, ok := ParseCoord(a.Coord); ok {
			p.Lat, p.Lng, p.HasCoord = lat, lng, true
		}
		if strings.TrimSpace(p.Address) == "" && !p.HasCoord {
			continue
		}
		points = append(points, p)
	}

	return BookTravel{
		ID:             t.ID,
		Title:          t.Name,
		Country:        t.CountryName,
		City:           t.CityName,
		Year:           t.Year,
		MonthName:      t.MonthName,
		Days:           t.NumberDays,
		Description:    normalizeRichText(t.Description),
		Recommendation: normalizeRichText(t.Recommendation),
		Pros:           normalizeRichText(t.Plus),
		Cons:           normalizeRichText(t.Minus),
		HeroImageURL:   primaryPhoto(t),
		ShareURL:       travelShareURL(t),
		Gallery:        gallery,
		MapPoints:      points,
	}
}

// ParseCoord parses a "lat,lng" string. Anything that does not yield two
// finite floats is reported as "no coordinate".
func ParseCoord(coord string) (lat, lng float64, ok bool) {
	parts := strings.Split(coord, ",")
	if len(parts) != 2 {
		return 0, 0, false
	}
	lat, errLat := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lng, errLng := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errLat != nil || errLng != nil {
		return 0, 0, false
	}
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return 0, 0, false
	}
	return lat, lng, true
}

// normalizeRichText drops "empty" markup values the API sometimes sends as
// literal strings.
func normalizeRichText(value string) string {
	trimmed := strings.TrimSpace(value)
	switch strings.ToLower(trimmed) {
	case "", "null", "undefined", "[]", "{}":
		return ""
	}
	return trimmed
}

func primaryPhoto(t TravelForBook) string {
	if t.ImageURL != "" {
		return t.ImageURL
	}
	if t.ImageThumbURL != "" {
		return t.ImageThumbURL
	}
	for _, g := range t.Gallery {
		if strings.TrimSpace(g.URL) != "" {
			return g.URL
		}
	}
	return ""
}

func travelShareURL(t TravelForBook) string {
	if t.Slug != "" {
		return "https://metravel.by/travels/" + t.Slug
	}
	return t.URL
}

func resolveAuthor(travels []TravelForBook) string {
	for _, t := range travels {
		if t.UserName != "" {
			return t.UserName
		}
	}
	return DefaultAuthor
}

// yearPeriod derives the book period from all parseable travel years.
// Distinct min and max concatenate with no separator ("20232024"), a quirk
// kept for compatibility with downstream consumers; generators that want a
// dashed range format it themselves.
func yearPeriod(travels []TravelForBook) string {
	minYear, maxYear := 0, 0
	for _, t := range travels {
		y, err := strconv.Atoi(strings.TrimSpace(t.Year))
		if err != nil || y <= 0 {
			continue
		}
		if minYear == 0 || y < minYear {
			minYear = y
		}
		if y > maxYear {
			maxYear = y
		}
	}
	switch {
	case maxYear == 0:
		return ""
	case minYear == maxYear:
		return strconv.Itoa(minYear)
	default:
		return strconv.Itoa(minYear) + strconv.Itoa(maxYear)
	}
}

// YearRange formats the dashed year range used by cover and TOC pages.
// Unlike the meta period it inserts an en dash between distinct years.
func YearRange(travels []BookTravel) string {
	minYear, maxYear := 0, 0
	for _, t := range travels {
		y, err := strconv.Atoi(strings.TrimSpace(t.Year))
		if err != nil || y <= 0 {
			continue
		}
		if minYear == 0 || y < minYear {
			minYear = y
		}
		if y > maxYear {
			maxYear = y
		}
	}
	switch {
	case maxYear == 0:
		return ""
	case minYear == maxYear:
		return strconv.Itoa(minYear)
	default:
		return strconv.Itoa(minYear) + "–" + strconv.Itoa(maxYear)
	}
}

// sortTravels orders travels once at build time; the order is stable
// thereafter. Country and alphabetical orders collate in Russian.
func sortTravels(travels []TravelForBook, order SortOrder) []TravelForBook {
	sorted := make([]TravelForBook, len(travels))
	copy(sorted, travels)

	switch order {
	case SortDateDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return yearOf(sorted[i]) > yearOf(sorted[j])
		})
	case SortDateAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return yearOf(sorted[i]) < yearOf(sorted[j])
		})
	case SortCountry:
		c := collate.New(language.Russian)
		sort.SliceStable(sorted, func(i, j int) bool {
			return c.CompareString(sorted[i].CountryName, sorted[j].CountryName) < 0
		})
	case SortAlphabetical:
		c := collate.New(language.Russian)
		sort.SliceStable(sorted, func(i, j int) bool {
			return c.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	}
	return sorted
}

func yearOf(t TravelForBook) int {
	y, err := strconv.Atoi(strings.TrimSpace(t.Year))
	if err != nil {
		return 0
	}
	return y
}

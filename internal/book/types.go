package book

import "time"

// SortOrder controls the one-time ordering of travels at build time.
type SortOrder string

const (
	SortDateDesc     SortOrder = "date-desc"
	SortDateAsc      SortOrder = "date-asc"
	SortCountry      SortOrder = "country"
	SortAlphabetical SortOrder = "alphabetical"
)

// CoverType selects how the cover image is resolved.
type CoverType string

const (
	CoverGradient   CoverType = "gradient"
	CoverFirstPhoto CoverType = "first-photo"
	CoverCustom     CoverType = "custom"
	CoverAuto       CoverType = "auto"
)

// BookSettings are the user-chosen export options. A settings value is an
// immutable input to a single build; changed settings require a new build.
type BookSettings struct {
	Title           string    `json:"title"`
	Subtitle        string    `json:"subtitle"`
	CoverType       CoverType `json:"coverType"`
	CoverImage      string    `json:"coverImage"`
	Template        string    `json:"template"`
	SortOrder       SortOrder `json:"sortOrder"`
	IncludeToc      bool      `json:"includeToc"`
	IncludeGallery  bool      `json:"includeGallery"`
	IncludeMap      bool      `json:"includeMap"`
	GalleryLayout   string    `json:"galleryLayout"`
	GalleryColumns  int       `json:"galleryColumns"`
	ShowCaptions    bool      `json:"showCaptions"`
	CaptionPosition string    `json:"captionPosition"`
	GallerySpacing  string    `json:"gallerySpacing"`
	ShareURL        string    `json:"shareUrl"`

	// Checklist flags are carried through for API compatibility; no page
	// generator consumes them yet.
	IncludeChecklists bool     `json:"includeChecklists"`
	ChecklistSections []string `json:"checklistSections,omitempty"`
}

// TravelForBook is one travel record as delivered by the API layer.
// All optional fields are plain strings/zero values; the builder never sees
// partially-typed data.
type TravelForBook struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Slug           string       `json:"slug"`
	URL            string       `json:"url"`
	Description    string       `json:"description"`
	Recommendation string       `json:"recommendation"`
	Plus           string       `json:"plus"`
	Minus          string       `json:"minus"`
	CountryName    string       `json:"countryName"`
	CityName       string       `json:"cityName"`
	Year           string       `json:"year"`
	MonthName      string       `json:"monthName"`
	NumberDays     int          `json:"numberDays"`
	ImageURL       string       `json:"imageUrl"`
	ImageThumbURL  string       `json:"imageThumbUrl"`
	Gallery        []GalleryRef `json:"gallery"`
	Addresses      []AddressRef `json:"addresses"`
	UserName       string       `json:"userName"`
}

// GalleryRef is a raw gallery entry from the API.
type GalleryRef struct {
	URL       string `json:"url"`
	Caption   string `json:"caption"`
	ID        string `json:"id"`
	UpdatedAt string `json:"updatedAt"`
}

// AddressRef is a raw visited-place entry from the API.
type AddressRef struct {
	ID           string `json:"id"`
	Address      string `json:"address"`
	Coord        string `json:"coord"` // "lat,lng"
	CategoryName string `json:"categoryName"`
	ThumbURL     string `json:"thumbUrl"`
}

// ArticleModel is a single article as delivered by the API layer, used for
// one-travel exports.
type ArticleModel struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	URL         string       `json:"url"`
	Gallery     []GalleryRef `json:"gallery"`
	UserName    string       `json:"userName"`
	Year        string       `json:"year"`
}

// --- Normalized model ---

// BookModel is the normalized, presentation-ready document descriptor.
type BookModel struct {
	Meta     BookMeta     `json:"meta"`
	Travels  []BookTravel `json:"travels"`
	Settings BookSettings `json:"settings"`
	QR       *QRTarget    `json:"qr,omitempty"`
}

// BookMeta holds derived document metadata.
type BookMeta struct {
	Title       string    `json:"title"`
	Subtitle    string    `json:"subtitle"`
	Author      string    `json:"author"`
	Period      string    `json:"period"`
	TravelCount int       `json:"travelCount"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// QRTarget is the optional shareable-link payload.
type QRTarget struct {
	URL   string `json:"url"`
	Label string `json:"label"`
}

// BookTravel is one travel's book-relevant projection.
type BookTravel struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Country        string         `json:"country"`
	City           string         `json:"city"`
	Year           string         `json:"year"`
	MonthName      string         `json:"monthName"`
	Days           int            `json:"days"`
	Description    string         `json:"description"`
	Recommendation string         `json:"recommendation"`
	Pros           string         `json:"pros"`
	Cons           string         `json:"cons"`
	HeroImageURL   string         `json:"heroImageUrl"`
	ShareURL       string         `json:"shareUrl"`
	Gallery        []BookPhoto    `json:"gallery"`
	MapPoints      []BookMapPoint `json:"mapPoints"`
}

// BookPhoto carries the original URL only; safe/proxied URLs are derived at
// render time and never written back.
type BookPhoto struct {
	URL       string `json:"url"`
	Caption   string `json:"caption"`
	ID        string `json:"id"`
	UpdatedAt string `json:"updatedAt"`
}

// BookMapPoint is one visited place. Lat/Lng are valid only when HasCoord is
// set; points without a parsable coordinate still surface in textual legends.
type BookMapPoint struct {
	ID       string  `json:"id"`
	Coord    string  `json:"coord"`
	Address  string  `json:"address"`
	Category string  `json:"category"`
	ThumbURL string  `json:"thumbUrl"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	HasCoord bool    `json:"hasCoord"`
}

package book

import (
	"testing"
)

// --- BuildFromTravels ---

func TestBuildFromTravels(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		model := BuildFromTravels(nil, BookSettings{Title: "Книга"})
		if model.Meta.TravelCount != 0 {
			t.Errorf("expected travel count 0, got %d", model.Meta.TravelCount)
		}
		if len(model.Travels) != 0 {
			t.Errorf("expected no travels, got %d", len(model.Travels))
		}
		if model.Meta.Author != DefaultAuthor {
			t.Errorf("expected default author, got %q", model.Meta.Author)
		}
		if model.Meta.Period != "" {
			t.Errorf("expected empty period, got %q", model.Meta.Period)
		}
	})

	t.Run("author from first travel", func(t *testing.T) {
		travels := []TravelForBook{
			{ID: "1", Name: "Альпы", UserName: "Мария"},
			{ID: "2", Name: "Байкал", UserName: "Иван"},
		}
		model := BuildFromTravels(travels, BookSettings{})
		if model.Meta.Author != "Мария" {
			t.Errorf("expected Мария, got %q", model.Meta.Author)
		}
	})

	t.Run("period concatenates distinct years without separator", func(t *testing.T) {
		travels := []TravelForBook{
			{ID: "1", Name: "a", Year: "2023"},
			{ID: "2", Name: "b", Year: "2024"},
		}
		model := BuildFromTravels(travels, BookSettings{})
		if model.Meta.Period != "20232024" {
			t.Errorf("expected 20232024, got %q", model.Meta.Period)
		}
	})

	t.Run("period for a single distinct year", func(t *testing.T) {
		travels := []TravelForBook{
			{ID: "1", Name: "a", Year: "2024"},
			{ID: "2", Name: "b", Year: "2024"},
		}
		model := BuildFromTravels(travels, BookSettings{})
		if model.Meta.Period != "2024" {
			t.Errorf("expected 2024, got %q", model.Meta.Period)
		}
	})

	t.Run("unparsable years are ignored", func(t *testing.T) {
		travels := []TravelForBook{
			{ID: "1", Name: "a", Year: "когда-то"},
			{ID: "2", Name: "b", Year: "2022"},
		}
		model := BuildFromTravels(travels, BookSettings{})
		if model.Meta.Period != "2022" {
			t.Errorf("expected 2022, got %q", model.Meta.Period)
		}
	})

	t.Run("qr present only with share url", func(t *testing.T) {
		without := BuildFromTravels(nil, BookSettings{})
		if without.QR != nil {
			t.Error("expected no QR target")
		}
		with := BuildFromTravels(nil, BookSettings{ShareURL: "https://metravel.by/u/7"})
		if with.QR == nil || with.QR.URL != "https://metravel.by/u/7" {
			t.Errorf("expected QR target, got %+v", with.QR)
		}
	})

	t.Run("date-desc sorting", func(t *testing.T) {
		travels := []TravelForBook{
			{ID: "1", Name: "a", Year: "2020"},
			{ID: "2", Name: "b", Year: "2024"},
			{ID: "3", Name: "c", Year: "2022"},
		}
		model := BuildFromTravels(travels, BookSettings{SortOrder: SortDateDesc})
		got := []string{model.Travels[0].ID, model.Travels[1].ID, model.Travels[2].ID}
		want := []string{"2", "3", "1"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("expected order %v, got %v", want, got)
			}
		}
	})

	t.Run("sort is stable for equal keys", func(t *testing.T) {
		travels := []TravelForBook{
			{ID: "1", Name: "a", Year: "2024"},
			{ID: "2", Name: "b", Year: "2024"},
		}
		model := BuildFromTravels(travels, BookSettings{SortOrder: SortDateDesc})
		if model.Travels[0].ID != "1" || model.Travels[1].ID != "2" {
			t.Errorf("expected original order preserved, got [%s %s]",
				model.Travels[0].ID, model.Travels[1].ID)
		}
	})

	t.Run("build does not mutate input order", func(t *testing.T) {
		travels := []TravelForBook{
			{ID: "1", Name: "a", Year: "2020"},
			{ID: "2", Name: "b", Year: "2024"},
		}
		BuildFromTravels(travels, BookSettings{SortOrder: SortDateDesc})
		if travels[0].ID != "1" {
			t.Error("input slice was reordered")
		}
	})
}

// --- projectTravel ---

func TestProjectTravel(t *testing.T) {
	t.Run("empty gallery urls dropped", func(t *testing.T) {
		travel := projectTravel(TravelForBook{
			Gallery: []GalleryRef{{URL: ""}, {URL: "  "}, {URL: "https://x/a.jpg"}},
		})
		if len(travel.Gallery) != 1 {
			t.Fatalf("expected 1 photo, got %d", len(travel.Gallery))
		}
		if travel.Gallery[0].URL != "https://x/a.jpg" {
			t.Errorf("unexpected photo url %q", travel.Gallery[0].URL)
		}
	})

	t.Run("gallery order preserved", func(t *testing.T) {
		travel := projectTravel(TravelForBook{
			Gallery: []GalleryRef{{URL: "u1"}, {URL: "u2"}, {URL: "u3"}},
		})
		for i, want := range []string{"u1", "u2", "u3"} {
			if travel.Gallery[i].URL != want {
				t.Fatalf("photo %d: expected %s, got %s", i, want, travel.Gallery[i].URL)
			}
		}
	})

	t.Run("literal null strings normalized", func(t *testing.T) {
		travel := projectTravel(TravelForBook{Description: "null", Plus: "undefined", Minus: " "})
		if travel.Description != "" || travel.Pros != "" || travel.Cons != "" {
			t.Errorf("expected empty narrative fields, got %+v", travel)
		}
	})

	t.Run("bad coordinate keeps point with address", func(t *testing.T) {
		travel := projectTravel(TravelForBook{
			Addresses: []AddressRef{{ID: "a", Address: "Минск", Coord: "not,numbers"}},
		})
		if len(travel.MapPoints) != 1 {
			t.Fatalf("expected 1 point, got %d", len(travel.MapPoints))
		}
		if travel.MapPoints[0].HasCoord {
			t.Error("expected no coordinate on unparsable coord")
		}
	})

	t.Run("no address and no coord drops point", func(t *testing.T) {
		travel := projectTravel(TravelForBook{
			Addresses: []AddressRef{{ID: "a", Address: "", Coord: "garbage"}},
		})
		if len(travel.MapPoints) != 0 {
			t.Errorf("expected 0 points, got %d", len(travel.MapPoints))
		}
	})

	t.Run("hero image preference order", func(t *testing.T) {
		got := projectTravel(TravelForBook{
			ImageThumbURL: "thumb",
			Gallery:       []GalleryRef{{URL: "g"}},
		})
		if got.HeroImageURL != "thumb" {
			t.Errorf("expected thumb, got %q", got.HeroImageURL)
		}
		got = projectTravel(TravelForBook{Gallery: []GalleryRef{{URL: "g"}}})
		if got.HeroImageURL != "g" {
			t.Errorf("expected gallery fallback, got %q", got.HeroImageURL)
		}
	})
}

// --- ParseCoord ---

func TestParseCoord(t *testing.T) {
	cases := []struct {
		coord string
		ok    bool
	}{
		{"53.9,27.56", true},
		{" 53.9 , 27.56 ", true},
		{"-12.1,170.0", true},
		{"", false},
		{"53.9", false},
		{"a,b", false},
		{"53.9,27.56,1", false},
		{"NaN,27.5", false},
	}
	for _, tc := range cases {
		t.Run(tc.coord, func(t *testing.T) {
			_, _, ok := ParseCoord(tc.coord)
			if ok != tc.ok {
				t.Errorf("ParseCoord(%q) ok = %v, want %v", tc.coord, ok, tc.ok)
			}
		})
	}
}

// --- YearRange ---

func TestYearRange(t *testing.T) {
	t.Run("dashed range for distinct years", func(t *testing.T) {
		got := YearRange([]BookTravel{{Year: "2020"}, {Year: "2024"}})
		if got != "2020–2024" {
			t.Errorf("expected 2020–2024, got %q", got)
		}
	})

	t.Run("single year", func(t *testing.T) {
		got := YearRange([]BookTravel{{Year: "2024"}, {Year: "2024"}})
		if got != "2024" {
			t.Errorf("expected 2024, got %q", got)
		}
	})

	t.Run("no valid years", func(t *testing.T) {
		if got := YearRange([]BookTravel{{Year: "x"}}); got != "" {
			t.Errorf("expected empty, got %q", got)
		}
	})
}

// --- BuildFromArticle ---

func TestBuildFromArticle(t *testing.T) {
	model := BuildFromArticle(ArticleModel{
		ID:       "42",
		Title:    "Неделя в горах",
		UserName: "Ольга",
		Year:     "2023",
		Gallery:  []GalleryRef{{URL: "https://x/1.jpg"}},
	}, BookSettings{Title: "Статья"})

	if model.Meta.TravelCount != 1 {
		t.Fatalf("expected 1 travel, got %d", model.Meta.TravelCount)
	}
	if model.Travels[0].Title != "Неделя в горах" {
		t.Errorf("unexpected title %q", model.Travels[0].Title)
	}
	if model.Meta.Author != "Ольга" {
		t.Errorf("unexpected author %q", model.Meta.Author)
	}
	if model.Meta.Period != "2023" {
		t.Errorf("unexpected period %q", model.Meta.Period)
	}
}

package catalog

import "verdant/internal/core/domain/model/kernel"

// Seed returns the built-in storefront catalog. The data is static: the
// slices are freshly allocated per call so a caller holding the result
// cannot alias another caller's copy.
func Seed() Catalog {
	return Catalog{
		Categories: []Category{
			{ID: "flower", Name: "Flower", Icon: "leaf"},
			{ID: "prerolls", Name: "Pre-Rolls", Icon: "flame"},
			{ID: "edibles", Name: "Edibles", Icon: "cookie"},
			{ID: "vapes", Name: "Vapes", Icon: "wind"},
			{ID: "concentrates", Name: "Concentrates", Icon: "droplet"},
		},
		Dispensaries: []Dispensary{
			{
				ID:      "disp-emerald",
				Name:    "Emerald Coast Collective",
				Address: "1180 Shoreline Dr",
				Rating:  4.8,
				ETA:     "35-50 min",
			},
			{
				ID:      "disp-highline",
				Name:    "Highline Gardens",
				Address: "77 Mercer St",
				Rating:  4.6,
				ETA:     "45-60 min",
			},
			{
				ID:      "disp-golden",
				Name:    "Golden Hour Dispensary",
				Address: "402 Sunset Blvd",
				Rating:  4.9,
				ETA:     "25-40 min",
			},
		},
		Products: []Product{
			{
				ID:           1,
				Name:         "Blue Dream 3.5g",
				CategoryID:   "flower",
				DispensaryID: "disp-emerald",
				Price:        kernel.NewMoneyFromDollars(42),
				THC:          "21%",
				Description:  "Sativa-leaning hybrid with berry notes and a clear-headed lift.",
				ImageURL:     "/images/products/blue-dream.jpg",
			},
			{
				ID:           2,
				Name:         "Wedding Cake 3.5g",
				CategoryID:   "flower",
				DispensaryID: "disp-emerald",
				Price:        kernel.NewMoneyFromDollars(52),
				THC:          "25%",
				Description:  "Indica-dominant flower with a rich, vanilla-sweet finish.",
				ImageURL:     "/images/products/wedding-cake.jpg",
			},
			{
				ID:           3,
				Name:         "Sour Diesel Pre-Roll 1g",
				CategoryID:   "prerolls",
				DispensaryID: "disp-highline",
				Price:        kernel.NewMoneyFromDollars(14),
				THC:          "19%",
				Description:  "Classic energizing sativa, ready to light.",
				ImageURL:     "/images/products/sour-diesel-preroll.jpg",
			},
			{
				ID:           4,
				Name:         "Infused Pre-Roll 5-Pack",
				CategoryID:   "prerolls",
				DispensaryID: "disp-golden",
				Price:        kernel.NewMoneyFromDollars(60),
				THC:          "32%",
				Description:  "Five half-gram pre-rolls dusted with kief.",
				ImageURL:     "/images/products/infused-pack.jpg",
			},
			{
				ID:           5,
				Name:         "Midnight Berry Gummies 100mg",
				CategoryID:   "edibles",
				DispensaryID: "disp-golden",
				Price:        kernel.NewMoneyFromDollars(28),
				THC:          "100mg",
				Description:  "Ten 10mg gummies with blackberry and elderberry.",
				ImageURL:     "/images/products/midnight-gummies.jpg",
			},
			{
				ID:           6,
				Name:         "Citrus Sparkling Tonic 10mg",
				CategoryID:   "edibles",
				DispensaryID: "disp-highline",
				Price:        kernel.NewMoneyFromDollars(9),
				THC:          "10mg",
				Description:  "Low-dose sparkling beverage with yuzu and grapefruit.",
				ImageURL:     "/images/products/citrus-tonic.jpg",
			},
			{
				ID:           7,
				Name:         "Gelato Live Resin Cart 1g",
				CategoryID:   "vapes",
				DispensaryID: "disp-emerald",
				Price:        kernel.NewMoneyFromDollars(65),
				THC:          "84%",
				Description:  "Full-spectrum live resin cartridge, dessert-forward terps.",
				ImageURL:     "/images/products/gelato-cart.jpg",
			},
			{
				ID:           8,
				Name:         "Daytrip Disposable 0.5g",
				CategoryID:   "vapes",
				DispensaryID: "disp-golden",
				Price:        kernel.NewMoneyFromDollars(38),
				THC:          "78%",
				Description:  "Pocket-sized disposable tuned for daytime focus.",
				ImageURL:     "/images/products/daytrip-disposable.jpg",
			},
			{
				ID:           9,
				Name:         "Papaya Punch Badder 1g",
				CategoryID:   "concentrates",
				DispensaryID: "disp-highline",
				Price:        kernel.NewMoneyFromDollars(55),
				THC:          "81%",
				Description:  "Terp-heavy badder with tropical fruit aromatics.",
				ImageURL:     "/images/products/papaya-badder.jpg",
			},
			{
				ID:           10,
				Name:         "Solventless Rosin 1g",
				CategoryID:   "concentrates",
				DispensaryID: "disp-emerald",
				Price:        kernel.NewMoneyFromDollars(72),
				THC:          "76%",
				Description:  "Cold-cured hash rosin pressed from fresh-frozen flower.",
				ImageURL:     "/images/products/solventless-rosin.jpg",
			},
		},
	}
}

package models

type TourPackage struct {
	PackageID          int     `json:"packageId"`
	PackageName        string  `json:"packageName" validate:"required"`
	PackageDescription string  `json:"packageDescription"`
	PackagePrice       float64 `json:"packagePrice"`
	PackageImageURL    string  `json:"packageImageUrl"`
	IsActive           bool    `json:"isActive"`
	IsFeatured         bool    `json:"isFeatured"`
	SortOrder          int     `json:"sortOrder"`
	PackageCategoryID  int     `json:"packageCategoryId"`
}

// PopularPackages selects the homepage highlight set: featured packages
// first, then by sort order, capped at limit. Inactive packages never
// surface.
func PopularPackages(packages []TourPackage, limit int) []TourPackage {
	popular := make([]TourPackage, 0, limit)
	for _, p := range packages {
		if p.IsActive && p.IsFeatured {
			popular = append(popular, p)
		}
	}
	for _, p := range packages {
		if len(popular) >= limit {
			break
		}
		if p.IsActive && !p.IsFeatured {
			popular = append(popular, p)
		}
	}
	if len(popular) > limit {
		popular = popular[:limit]
	}
	return popular
}

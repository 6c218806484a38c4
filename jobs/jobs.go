// Package jobs models the occupational classification catalog: categories
// and jobs with per-locale names, read-only at runtime.
package jobs

import "github.com/jobatlas/jobatlas/locale"

// Translations holds one string per supported locale.
type Translations struct {
	EN string `json:"en"`
	FR string `json:"fr"`
	PT string `json:"pt"`
}

// Get returns the translation for l, falling back to the default locale
// when the translation is missing.
func (t Translations) Get(l locale.Locale) string {
	var s string
	switch l {
	case locale.French:
		s = t.FR
	case locale.Portuguese:
		s = t.PT
	default:
		s = t.EN
	}
	if s == "" {
		return t.EN
	}
	return s
}

// Category is a top-level occupational group.
type Category struct {
	ID          string
	Code        string
	Name        Translations
	Description Translations
}

// Job is a single classified occupation within a category.
type Job struct {
	ID           string
	Code         string
	CategoryCode string
	Title        Translations
	IsInformal   bool
	IsEmerging   bool
	IsAgri       bool
}

// LocalizedCategory is the projection of a Category for one locale.
type LocalizedCategory struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Localize projects the category into l.
func (c Category) Localize(l locale.Locale) LocalizedCategory {
	return LocalizedCategory{
		Code:        c.Code,
		Name:        c.Name.Get(l),
		Description: c.Description.Get(l),
	}
}

// LocalizedJob is the projection of a Job for one locale.
type LocalizedJob struct {
	Code         string `json:"code"`
	CategoryCode string `json:"categoryCode"`
	Title        string `json:"title"`
	IsInformal   bool   `json:"isInformal"`
	IsEmerging   bool   `json:"isEmerging"`
	IsAgri       bool   `json:"isAgri"`
}

// Localize projects the job into l.
func (j Job) Localize(l locale.Locale) LocalizedJob {
	return LocalizedJob{
		Code:         j.Code,
		CategoryCode: j.CategoryCode,
		Title:        j.Title.Get(l),
		IsInformal:   j.IsInformal,
		IsEmerging:   j.IsEmerging,
		IsAgri:       j.IsAgri,
	}
}

// LocalizeCategories projects a category list into l, preserving order.
func LocalizeCategories(categories []Category, l locale.Locale) []LocalizedCategory {
	out := make([]LocalizedCategory, 0, len(categories))
	for _, c := range categories {
		out = append(out, c.Localize(l))
	}
	return out
}

// LocalizeJobs projects a job list into l, preserving order.
func LocalizeJobs(jobs []Job, l locale.Locale) []LocalizedJob {
	out := make([]LocalizedJob, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.Localize(l))
	}
	return out
}

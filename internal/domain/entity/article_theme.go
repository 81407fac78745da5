package entity

// ArticleTheme representa un tema de colección del catálogo de artículos.
type ArticleTheme struct {
	ID          string
	Code        string
	Name        string
	Description string
	Stamp
}

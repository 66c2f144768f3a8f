package ports

// QuerySource returns the raw text of a named query template.
type QuerySource interface {
	Load(name string) (string, error)
}

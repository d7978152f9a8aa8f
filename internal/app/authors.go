package app

// AuthorOptions is an append-only list of author selector options.
// Names already present are skipped, so reloading the author list never duplicates options.
// The zero value is ready to use. Not safe for concurrent use.
type AuthorOptions struct {
	names []string
	seen  map[string]struct{}
}

// Append adds names not yet present, keeping their order. Returns the number of added names.
func (o *AuthorOptions) Append(names []string) int {
	if o.seen == nil {
		o.seen = make(map[string]struct{}, len(names))
	}

	var added int
	for _, n := range names {
		if _, ok := o.seen[n]; ok {
			continue
		}
		o.seen[n] = struct{}{}
		o.names = append(o.names, n)
		added++
	}

	return added
}

// Names returns a copy of current options.
func (o *AuthorOptions) Names() []string {
	names := make([]string, len(o.names))
	copy(names, o.names)
	return names
}

// Len returns the number of options.
func (o *AuthorOptions) Len() int {
	return len(o.names)
}

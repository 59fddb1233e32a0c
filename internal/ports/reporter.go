package ports

// Reporter receives user-facing output lines (book listings, engine starts).
type Reporter interface {
	Report(line string)
}

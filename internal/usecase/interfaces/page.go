package interfaces

// PageRequest bounds a paginated read. Cursor is the opaque token returned as
// NextCursor by the previous page; empty starts from the beginning.
type PageRequest struct {
	Limit  int32
	Cursor string
}

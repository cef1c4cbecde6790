package item

import "errors"

var (
	ErrItemNotFound           = errors.New("item not found")
	ErrItemAlreadyExists      = errors.New("an item with this ISBN already exists")
	ErrISBNAlreadyExists      = errors.New("another item already uses this ISBN")
	ErrCannotDeleteCheckedOut = errors.New("cannot delete an item that is checked out")
)

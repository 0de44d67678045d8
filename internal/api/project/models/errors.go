package models

import "errors"

var errInvalidCommentID = errors.New("invalid comment _id value")

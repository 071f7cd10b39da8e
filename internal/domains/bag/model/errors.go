package model

import "errors"

var ErrItemNotInBag = errors.New("item is not in the bag")

package srs

import (
	"errors"
	"fmt"
)

var ErrInvalidRating = errors.New("srs: rating must be between 1 and 4")

// Rating は復習時の自己評価。3 未満はラプス (失敗) 扱い。
type Rating int

const (
	Again Rating = iota + 1
	Hard
	Good
	Easy
)

var ratingNames = [...]string{Again: "Again", Hard: "Hard", Good: "Good", Easy: "Easy"}

func (r Rating) String() string {
	if r.Valid() {
		return ratingNames[r]
	}
	return fmt.Sprintf("Rating(%d)", int(r))
}

func (r Rating) Valid() bool {
	return r >= Again && r <= Easy
}

func (r Rating) IsLapse() bool {
	return r < Good
}

// ParseRating は範囲外の値を ErrInvalidRating として返す
func ParseRating(n int) (Rating, error) {
	r := Rating(n)
	if !r.Valid() {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidRating, n)
	}
	return r, nil
}

package jsonplaceholder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/tomocy/posts/domain"
)

type Posts []*Post

// Decode accepts only a JSON array of post objects. A bare null, any other
// top-level value or trailing data after the array is rejected.
func Decode(data []byte) (Posts, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) <= 0 || trimmed[0] != '[' {
		return nil, errors.New("invalid payload: the payload should be a json array")
	}

	var ps Posts
	if err := json.Unmarshal(trimmed, &ps); err != nil {
		return nil, err
	}
	for i, p := range ps {
		if err := p.validate(); err != nil {
			return nil, fmt.Errorf("invalid post[%d]: %s", i, err)
		}
	}

	return ps, nil
}

func (ps Posts) Adapt() domain.Posts {
	adapteds := make(domain.Posts, len(ps))
	for i, p := range ps {
		adapteds[i] = p.Adapt()
	}

	return adapteds
}

type Post struct {
	UserID *wholeNumber `json:"userId"`
	ID     *wholeNumber `json:"id"`
	Title  *string      `json:"title"`
	Body   *string      `json:"body"`
}

func (p *Post) validate() error {
	if p == nil {
		return errors.New("null post: the post should be an object")
	}
	if p.UserID == nil {
		return errors.New("missing userId")
	}
	if p.ID == nil {
		return errors.New("missing id")
	}
	if p.Title == nil {
		return errors.New("missing title")
	}
	if p.Body == nil {
		return errors.New("missing body")
	}

	return nil
}

func (p *Post) Adapt() domain.Post {
	return domain.Post{
		UserID: int(*p.UserID),
		ID:     int(*p.ID),
		Title:  *p.Title,
		Body:   *p.Body,
	}
}

// wholeNumber accepts any json number without a fractional part, such as 1,
// 1.0 or 1e2.
type wholeNumber int

func (n *wholeNumber) UnmarshalJSON(data []byte) error {
	literal := string(data)
	if parsed, err := strconv.ParseInt(literal, 10, 0); err == nil {
		*n = wholeNumber(parsed)
		return nil
	}

	parsed, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return fmt.Errorf("invalid number: %s", literal)
	}
	if parsed != math.Trunc(parsed) || parsed < math.MinInt || math.MaxInt <= parsed {
		return fmt.Errorf("invalid number: %s: the number should be an integer", literal)
	}
	*n = wholeNumber(parsed)

	return nil
}

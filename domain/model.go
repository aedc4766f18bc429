package domain

type Posts []Post

type Post struct {
	UserID int
	ID     int
	Title  string
	Body   string
}

func (ps Posts) Copy() Posts {
	if ps == nil {
		return nil
	}
	copied := make(Posts, len(ps))
	copy(copied, ps)

	return copied
}

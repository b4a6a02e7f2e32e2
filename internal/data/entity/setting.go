package entity

type Setting struct {
	BaseNoDelete
	Key   string `db:"key"`
	Value string `db:"value"`
}

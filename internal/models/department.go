package models

// Department is created at seed time and immutable afterwards.
type Department struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Manager string `json:"manager"`
}

package broken

import "time"

type Person struct {
	ID    int64
	Name  string `json:"name"`
	Alias string `orm:",name=name"`
	Born  int    `orm:"date"`
	Flag  bool   `orm:"switch"`
}

type Note struct {
	Text string
}

type stamp struct {
	Created time.Time `json:"created"`
}

type Tagged struct {
	stamp
	ID int64 `json:"id"`
}

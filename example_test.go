package attmap_test

import (
	"errors"
	"fmt"

	"github.com/llxisdsh/attmap"
)

func ExampleOrdAttMap() {
	m := attmap.NewOrdAttMap(nil)
	m.SetItem("name", "demo")
	m.SetItem("paths", map[string]any{"out": "/tmp/out"})

	paths, _ := m.Attr("paths")
	out, _ := paths.(attmap.AttMapLike).Attr("out")
	fmt.Println(out)
	fmt.Println(m)
	// Output:
	// /tmp/out
	// OrdAttMap[name:demo paths:OrdAttMap[out:/tmp/out]]
}

func ExampleEchoAttMap() {
	m := attmap.NewEchoAttMap(map[string]any{"sample": "s1"})
	v, _ := m.Attr("genome")
	fmt.Println(v)
	_, err := m.Item("genome")
	fmt.Println(errors.Is(err, attmap.ErrKeyNotFound))
	// Output:
	// genome
	// true
}

func ExamplePathExAttMap() {
	env := map[string]string{"PROJECT": "/srv/proj"}
	m := attmap.NewPathExAttMap(
		map[string]any{"results": "$PROJECT/results"},
		attmap.WithLookupEnv(func(k string) (string, bool) {
			v, ok := env[k]
			return v, ok
		}),
	)
	v, _ := m.Item("results")
	fmt.Println(v)
	// Output:
	// /srv/proj/results
}

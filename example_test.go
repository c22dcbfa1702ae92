package nourl_test

import (
	"errors"
	"fmt"

	"github.com/rmja/nourl"
)

// Example demonstrates parsing a URL and reading its components.
func Example() {
	u, err := nourl.Parse("http://localhost:8088/foo/bar")
	if err != nil {
		fmt.Println("parse failed:", err)
		return
	}

	fmt.Println(u.Scheme())
	fmt.Println(u.Host())
	fmt.Println(u.PortOrDefault())
	fmt.Println(u.Path())
	// Output:
	// http
	// localhost
	// 8088
	// /foo/bar
}

// ExampleURL_PortOrDefault demonstrates the scheme default ports.
func ExampleURL_PortOrDefault() {
	for _, raw := range []string{
		"http://localhost",
		"https://localhost",
		"mqtt://broker",
		"mqtts://broker",
		"http://localhost:8088",
	} {
		u := nourl.MustParse(raw)
		fmt.Printf("%s -> %d\n", raw, u.PortOrDefault())
	}
	// Output:
	// http://localhost -> 80
	// https://localhost -> 443
	// mqtt://broker -> 1883
	// mqtts://broker -> 8883
	// http://localhost:8088 -> 8088
}

// ExampleParse_errors demonstrates matching parse failures with errors.Is.
func ExampleParse_errors() {
	_, err := nourl.Parse("ftp://localhost")
	fmt.Println(errors.Is(err, nourl.ErrUnsupportedScheme))

	_, err = nourl.Parse("localhost/foo")
	fmt.Println(errors.Is(err, nourl.ErrInvalidScheme))
	// Output:
	// true
	// true
}

// ExampleURL_Query demonstrates reading the query component.
func ExampleURL_Query() {
	u := nourl.MustParse("https://example.com/search?q=go")

	query, ok := u.Query()
	fmt.Println(query, ok)

	u = nourl.MustParse("https://example.com/search")
	_, ok = u.Query()
	fmt.Println(ok)
	// Output:
	// q=go true
	// false
}

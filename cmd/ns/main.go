package main

import "github.com/xafn/nextstep/cmd/ns/root"

func main() {
	root.Execute()
}

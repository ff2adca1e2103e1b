package main

import (
	"oss.terrastruct.com/deck/deckcli"
	"oss.terrastruct.com/deck/lib/xmain"
)

func main() {
	xmain.Main(deckcli.Run)
}

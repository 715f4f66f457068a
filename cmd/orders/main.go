package main

import (
	"github.com/daitlovv/gozon-shop/internal/orders/app"
)

func main() {
	app.Run()
}

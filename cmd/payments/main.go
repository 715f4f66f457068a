package main

import (
	"github.com/daitlovv/gozon-shop/internal/payments/app"
)

func main() {
	app.Run()
}

package main

import (
	"gitlab.com/digitory/partner_portal_api/cmd"
)

func main() {
	cmd.Execute()
}

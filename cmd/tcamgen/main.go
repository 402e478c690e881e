// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tcamgen

package main

import "github.com/pktclass/tcamgen/cmd/tcamgen/app"

func main() {
	app.Execute()
}

// Command writeconfig writes the default configuration file.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/llehouerou/deskboard/internal/config"
	"github.com/llehouerou/deskboard/internal/errmsg"
)

func main() {
	force := flag.Bool("force", false, "overwrite an existing file")
	path := flag.String("path", config.DefaultPath(), "target file")
	flag.Parse()

	if err := config.WriteDefault(*path, *force); err != nil {
		fmt.Fprintln(os.Stderr, errmsg.FormatWith(errmsg.OpConfigWrite, *path, err))
		os.Exit(1)
	}
	fmt.Println(*path)
}

/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/notargets/gomsh/readers"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [meshfile...]",
	Short: "Parse Gmsh mesh files and report errors and warnings",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if failed := runCheck(args, os.Stdout); failed {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(files []string, w io.Writer) (failed bool) {
	for _, f := range files {
		m, warnings, err := readers.ReadGmsh4(f)
		if err != nil {
			fmt.Fprintf(w, "%s: FAIL: %v\n", f, err)
			failed = true
			continue
		}
		for _, warn := range warnings {
			fmt.Fprintf(w, "%s: warning: %s\n", f, warn)
		}
		fmt.Fprintf(w, "%s: OK (%d points, %d cells)\n", f, m.NumVertices, m.NumElements)
	}
	return failed
}

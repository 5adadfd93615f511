// Copyright 2021 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/saferwall/lnk"
)

var (
	all        bool
	verbose    bool
	header     bool
	targetList bool
	linkInfo   bool
	strings    bool
	extraData  bool
)

func prettyPrint(buf []byte) string {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, buf, "", "\t"); err != nil {
		log.Println("JSON parse error: ", err)
		return string(buf)
	}
	return pretty.String()
}

func isDirectory(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func dumpLnk(filename string, cmd *cobra.Command) {
	log.Printf("Processing filename %s", filename)

	sl, err := lnk.Open(filename, nil)
	if err != nil {
		log.Printf("Error while opening file: %s, reason: %s", filename, err)
		return
	}

	wantHeader, _ := cmd.Flags().GetBool("header")
	if wantHeader {
		b, _ := json.Marshal(sl.Header)
		fmt.Println(prettyPrint(b))
	}

	wantTargetList, _ := cmd.Flags().GetBool("targetlist")
	if wantTargetList {
		b, _ := json.Marshal(sl.LinkTargetIDList)
		fmt.Println(prettyPrint(b))
	}

	wantLinkInfo, _ := cmd.Flags().GetBool("linkinfo")
	if wantLinkInfo {
		b, _ := json.Marshal(sl.LinkInfo)
		fmt.Println(prettyPrint(b))
	}

	wantStrings, _ := cmd.Flags().GetBool("strings")
	if wantStrings {
		b, _ := json.Marshal(sl.StringData)
		fmt.Println(prettyPrint(b))
	}

	wantExtraData, _ := cmd.Flags().GetBool("extradata")
	if wantExtraData {
		b, _ := json.Marshal(sl.ExtraData)
		fmt.Println(prettyPrint(b))
	}

	wantAll, _ := cmd.Flags().GetBool("all")
	if wantAll {
		b, _ := json.Marshal(sl)
		fmt.Println(prettyPrint(b))
	}
}

func dump(cmd *cobra.Command, args []string) {
	filePath := args[0]

	if !isDirectory(filePath) {
		dumpLnk(filePath, cmd)
		return
	}

	var fileList []string
	filepath.Walk(filePath, func(path string, f os.FileInfo, err error) error {
		if !isDirectory(path) {
			fileList = append(fileList, path)
		}
		return nil
	})

	for _, file := range fileList {
		dumpLnk(file, cmd)
	}
}

func main() {
	var rootCmd = &cobra.Command{
		Use:   "lnkdump",
		Short: "A Windows Shell Link (.lnk) file parser",
		Long:  "A .lnk parser built for forensics and malware-analysis workflows by Saferwall",
		Run: func(cmd *cobra.Command, args []string) {
		},
	}

	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version number",
		Long:  "Print version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print("You are using version 0.0.1")
		},
	}

	var dumpCmd = &cobra.Command{
		Use:   "dump",
		Short: "Dumps the file",
		Long:  "Dumps interesting structures of a Windows Shell Link file",
		Args:  cobra.MinimumNArgs(1),
		Run:   dump,
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(dumpCmd)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	dumpCmd.Flags().BoolVarP(&header, "header", "", false, "Dump the ShellLinkHeader")
	dumpCmd.Flags().BoolVarP(&targetList, "targetlist", "", false, "Dump the LinkTargetIDList")
	dumpCmd.Flags().BoolVarP(&linkInfo, "linkinfo", "", false, "Dump LinkInfo")
	dumpCmd.Flags().BoolVarP(&strings, "strings", "", false, "Dump StringData")
	dumpCmd.Flags().BoolVarP(&extraData, "extradata", "", false, "Dump ExtraData")
	dumpCmd.Flags().BoolVarP(&all, "all", "", false, "Dump everything")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"i18next-parser/core/catalog"
	"i18next-parser/core/config"
	"i18next-parser/feature/merger"
)

// Debug tool: merge two catalog files the way an extract run would and dump
// the result, so merge behavior can be inspected on real catalogs.
func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: debug_merge <fresh-catalog> <disk-catalog>")
		os.Exit(2)
	}

	cfg, err := config.Load(".")
	if err != nil {
		log.Fatal(err)
	}

	fresh, err := catalog.ReadFile(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}
	disk, err := catalog.ReadFile(os.Args[2])
	if err != nil {
		log.Fatal(err)
	}

	result := merger.Merge(fresh, disk, nil, "", false, cfg)

	fmt.Println("=== MERGED ===")
	printTree(result.New)
	fmt.Println("\n=== ORPHANED ===")
	printTree(result.Old)

	fmt.Printf("\nmerged=%d pulled=%d orphaned=%d reset=%d\n",
		result.MergeCount, result.PullCount, result.OldCount, result.ResetCount)

	output := map[string]any{
		"new":         result.New,
		"old":         result.Old,
		"reset":       result.Reset,
		"merge_count": result.MergeCount,
		"pull_count":  result.PullCount,
		"old_count":   result.OldCount,
		"reset_count": result.ResetCount,
	}
	data, _ := json.MarshalIndent(output, "", "  ")
	os.WriteFile("debug_merge.json", data, 0644)

	fmt.Println("\nDebug complete. Check debug_merge.json for details.")
}

func printTree(obj catalog.Object) {
	data, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(data))
}

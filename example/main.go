// Example of remembering a user-granted folder across launches.
//
// On first run the folder chooser appears; every later run reuses the stored
// grant without prompting.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/tmc/bookmarks"
)

func main() {
	store := bookmarks.New()

	const key = "export-folder"

	_, err := store.Resolve(key)
	if errors.Is(err, bookmarks.ErrNotFound) {
		if _, err := store.PromptAndStore("Choose", "Select the export folder", key); err != nil {
			log.Fatal(err)
		}
	} else if err != nil {
		log.Fatal(err)
	}

	err = store.WithAccess(context.Background(), key, func(ctx context.Context, dir string) error {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d entries\n", dir, len(entries))
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}
}

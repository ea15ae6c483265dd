// Command bookmarkctl inspects and maintains persisted folder bookmarks.
//
// It operates on the same token stores the bookmarks library uses, which
// makes it handy for debugging an application's stored grants:
//
//	bookmarkctl list
//	bookmarkctl set project-folder ~/Projects
//	bookmarkctl resolve project-folder
//	bookmarkctl reveal project-folder
//
// By default the platform token store is used (NSUserDefaults on macOS, a
// JSON file elsewhere); --file and --keyring select alternatives.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmc/bookmarks"
)

var (
	filePath       string
	keyringService string
)

var rootCmd = &cobra.Command{
	Use:           "bookmarkctl",
	Short:         "Inspect and maintain persisted folder bookmarks",
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func newStore() (*bookmarks.Store, error) {
	s := bookmarks.New()
	switch {
	case filePath != "":
		s.Tokens = bookmarks.NewFileStore(filePath)
	case keyringService != "":
		ks, err := bookmarks.NewKeyringStore(keyringService)
		if err != nil {
			return nil, err
		}
		s.Tokens = ks
	}
	return s, nil
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored bookmark keys",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newStore()
		if err != nil {
			return err
		}
		keys, err := s.Tokens.Keys()
		if err != nil {
			return err
		}
		for _, k := range keys {
			fmt.Println(k)
		}
		return nil
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <key>",
	Short: "Resolve a bookmark to its current folder path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newStore()
		if err != nil {
			return err
		}
		folder, err := s.Resolve(args[0])
		if err != nil {
			return err
		}
		if folder.Stale {
			fmt.Printf("%s (was stale, refreshed)\n", folder.Path)
			return nil
		}
		fmt.Println(folder.Path)
		return nil
	},
}

var setCmd = &cobra.Command{
	Use:   "set <key> <path>",
	Short: "Encode a folder into a fresh token and store it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newStore()
		if err != nil {
			return err
		}
		if !s.Save(args[0], args[1]) {
			return fmt.Errorf("could not store bookmark %q for %s (run with BOOKMARKS_DEBUG=1 for details)", args[0], args[1])
		}
		return nil
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <key>",
	Short: "Remove a stored bookmark",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newStore()
		if err != nil {
			return err
		}
		return s.Delete(args[0])
	},
}

var lastCmd = &cobra.Command{
	Use:   "last <key>",
	Short: "Print the last selected folder for a key (or the default)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newStore()
		if err != nil {
			return err
		}
		fmt.Println(s.LastSelected(args[0]))
		return nil
	},
}

var chooseCmd = &cobra.Command{
	Use:   "choose <key>",
	Short: "Present the folder chooser and store the selection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt, _ := cmd.Flags().GetString("prompt")
		message, _ := cmd.Flags().GetString("message")
		s, err := newStore()
		if err != nil {
			return err
		}
		dir, err := s.PromptAndStore(prompt, message, args[0])
		if err != nil {
			return err
		}
		fmt.Println(dir)
		return nil
	},
}

var revealCmd = &cobra.Command{
	Use:   "reveal <key>",
	Short: "Open the bookmarked folder in the file browser",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newStore()
		if err != nil {
			return err
		}
		folder, err := s.Resolve(args[0])
		if err != nil {
			return err
		}
		return bookmarks.Reveal(folder.Path)
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&filePath, "file", "", "use a JSON token file instead of the platform store")
	rootCmd.PersistentFlags().StringVar(&keyringService, "keyring", "", "use the system keyring with this service name")
	chooseCmd.Flags().String("prompt", "Choose", "chooser button title")
	chooseCmd.Flags().String("message", "Select a folder", "chooser message text")

	rootCmd.AddCommand(listCmd, resolveCmd, setCmd, rmCmd, lastCmd, chooseCmd, revealCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

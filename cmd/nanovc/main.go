// Command nanovc is a small command-line driver over the in-memory
// porcelain.Repo API — a demonstration harness, analogous to the
// teacher's cmd/app.go, and not part of the core library's contract.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brickster241/nanovc/porcelain"
)

var repo *porcelain.Repo

var rootCmd = &cobra.Command{
	Use:   "nanovc",
	Short: "nanovc is an in-memory, content-addressed version control engine",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a fresh in-memory repository for this process",
	Run: func(cmd *cobra.Command, args []string) {
		repo = porcelain.Init()
		fmt.Printf("Initialized empty nanovc repo %s\n", repo.ID)
	},
}

var addCmd = &cobra.Command{
	Use:   "add <path> <content>",
	Short: "Put content in the working area and stage it",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		mustHaveRepo()
		repo.PutWorkingAreaContent(args[0], []byte(args[1]))
		repo.AddAll(true)
		fmt.Printf("staged %s\n", args[0])
	},
}

var commitCmd = &cobra.Command{
	Use:   "commit <message>",
	Short: "Commit the staging area",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		mustHaveRepo()
		commit, err := repo.CommitAll(args[0], true)
		if err != nil {
			fmt.Println("Error committing:", err)
			os.Exit(1)
		}
		fmt.Printf("[%s] %s\n", commit.Hash(), args[0])
	},
}

var logCmd = &cobra.Command{
	Use:   "log [<name-or-hash>]",
	Short: "Show commit history reachable from a ref or commit",
	Run: func(cmd *cobra.Command, args []string) {
		mustHaveRepo()
		target := ""
		if len(args) == 1 {
			target = args[0]
		} else if name, ok := repo.CurrentBranchName(); ok {
			target = name
		}

		entries, err := repo.Log(target)
		if err != nil {
			fmt.Println("Error listing commits:", err)
			os.Exit(1)
		}
		for _, e := range entries {
			fmt.Printf("commit %s\n", e.Hash)
			fmt.Printf("Author: %s\n", e.Author)
			fmt.Printf("Date:   %s\n\n", e.CommitterTimestamp)
			fmt.Printf("    %s\n\n", e.Message)
		}
	},
}

var checkoutCmd = &cobra.Command{
	Use:   "checkout <name-or-hash>",
	Short: "Rehydrate all three content areas from a commit",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		mustHaveRepo()
		commit, err := repo.Checkout(args[0], 0)
		if err != nil {
			fmt.Println("Error checking out:", err)
			os.Exit(1)
		}
		fmt.Printf("checked out %s\n", commit.Hash())
	},
}

var branchCmd = &cobra.Command{
	Use:   "branch <name>",
	Short: "Create a branch at HEAD's current commit",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		mustHaveRepo()
		repo.Branch(args[0])
		fmt.Printf("branch %s created\n", args[0])
	},
}

var mergeCmd = &cobra.Command{
	Use:   "merge <a> <b> <dest-branch> <message>",
	Short: "Three-way merge a and b into dest-branch",
	Args:  cobra.ExactArgs(4),
	Run: func(cmd *cobra.Command, args []string) {
		mustHaveRepo()
		commit, err := repo.Merge(args[0], args[1], args[2], args[3])
		if err != nil {
			fmt.Println("Error merging:", err)
			os.Exit(1)
		}
		fmt.Printf("merge commit %s\n", commit.Hash())
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show repo status (contract stub)",
	Run: func(cmd *cobra.Command, args []string) {
		mustHaveRepo()
		fmt.Printf("%+v\n", repo.GetStatus())
	},
}

var debugCmd = &cobra.Command{
	Use:   "debug",
	Short: "Pretty-print the whole repo",
	Run: func(cmd *cobra.Command, args []string) {
		mustHaveRepo()
		fmt.Print(repo.GetDebugString())
	},
}

func mustHaveRepo() {
	if repo == nil {
		fmt.Println("no repo initialized; run 'nanovc init' first")
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(commitCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(checkoutCmd)
	rootCmd.AddCommand(branchCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(debugCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

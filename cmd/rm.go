package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taskwell/taskwell/internal/task"
)

var rmYes bool

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a task",
	Long:  `Delete removes a task permanently. It asks for confirmation unless --yes is passed; declining leaves the store untouched.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		_, _, ed, closer, err := setup()
		if err != nil {
			return err
		}
		defer closer()

		t := task.Find(ed.Tasks(), id)
		if t == nil {
			return fmt.Errorf("no task with id %d", id)
		}

		title := t.Title
		if !rmYes && !confirm(fmt.Sprintf("Delete task %d (%s)? [y/N] ", id, title)) {
			fmt.Println("Aborted.")
			return nil
		}

		if err := ed.Delete(id); err != nil {
			return err
		}
		fmt.Printf("Deleted task %d: %s\n", id, title)
		return nil
	},
}

func init() {
	rmCmd.Flags().BoolVarP(&rmYes, "yes", "y", false, "Skip the confirmation prompt")
}

// confirm prompts on stdout and reads a yes/no answer from stdin.
// Anything other than y/yes declines.
func confirm(prompt string) bool {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/golst/internal/logging"
	"github.com/yaklabco/golst/pkg/query"
	"github.com/yaklabco/golst/pkg/runner"
	"github.com/yaklabco/golst/pkg/tree"
)

// ErrMissingFlag is returned when a required edit flag is empty.
var ErrMissingFlag = errors.New("missing required flag")

// editFlags hold the selection shared by the edit commands.
type editFlags struct {
	typ    string
	name   string
	fields bool
	to     string
	report string
}

// predicate selects declarations of the requested type, optionally narrowed
// by variable name and to fields.
func (f *editFlags) predicate() query.Predicate {
	preds := []query.Predicate{query.DeclaredTypeIs(f.typ)}
	if f.name != "" {
		preds = append(preds, query.NameIs(f.name))
	}
	if f.fields {
		preds = append(preds, query.IsField())
	}
	return query.And(preds...)
}

func addSelectionFlags(cmd *cobra.Command, flags *editFlags, typeFlag string) {
	cmd.Flags().StringVar(&flags.typ, typeFlag, "", "fully qualified type of the declarations to select")
	cmd.Flags().StringVar(&flags.name, "name", "", "only select declarations of this variable")
	cmd.Flags().BoolVar(&flags.fields, "fields", false, "only select fields")
	addReportFlag(cmd, &flags.report)
}

// requireFlags checks name/value pairs and reports the first empty value.
func requireFlags(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			return fmt.Errorf("%w: %w --%s", ErrUsage, ErrMissingFlag, pairs[i])
		}
	}
	return nil
}

func newChangeTypeCommand(global *globalFlags) *cobra.Command {
	flags := &editFlags{}

	cmd := &cobra.Command{
		Use:   "change-type --from FQN --to FQN [PATH...]",
		Short: "Change the declared type of variables",
		Long: `Change every variable declaration whose declared type is --from so that
it declares --to instead. Generic arguments are kept.

Imports are not rewritten; the imports the change implies are logged.`,
		Example: `  golst change-type --from java.util.List --to java.util.Collection src/
  golst change-type --from java.util.Date --to java.time.Instant --fields --dry-run .`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlags("from", flags.typ, "to", flags.to); err != nil {
				return err
			}
			s, err := newSession(cmd, global)
			if err != nil {
				return err
			}
			_, err = s.run(args, s.editTransform("change-type", flags, func(q *query.Query[*tree.VariableDeclarations]) *query.Query[*tree.VariableDeclarations] {
				return q.ChangeType(flags.to)
			}), flags.report)
			return err
		},
	}

	addSelectionFlags(cmd, flags, "from")
	cmd.Flags().StringVar(&flags.to, "to", "", "fully qualified type to declare instead")

	return cmd
}

func newRenameCommand(global *globalFlags) *cobra.Command {
	flags := &editFlags{}

	cmd := &cobra.Command{
		Use:   "rename --type FQN --to NAME [PATH...]",
		Short: "Rename variables of a type",
		Long: `Rename the variable of every declaration whose declared type is --type.

Only the declaration is renamed, not its uses. Declarations of several
variables cannot be renamed and make the file fail.`,
		Example: `  golst rename --type java.util.logging.Logger --to LOG --fields src/
  golst rename --type java.lang.String --name s --to text App.java`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlags("type", flags.typ, "to", flags.to); err != nil {
				return err
			}
			s, err := newSession(cmd, global)
			if err != nil {
				return err
			}
			_, err = s.run(args, s.editTransform("rename", flags, func(q *query.Query[*tree.VariableDeclarations]) *query.Query[*tree.VariableDeclarations] {
				return q.Rename(flags.to)
			}), flags.report)
			return err
		},
	}

	addSelectionFlags(cmd, flags, "type")
	cmd.Flags().StringVar(&flags.to, "to", "", "new variable name")

	return cmd
}

func newDeleteCommand(global *globalFlags) *cobra.Command {
	flags := &editFlags{}

	cmd := &cobra.Command{
		Use:   "delete --type FQN [PATH...]",
		Short: "Delete variable declarations of a type",
		Long: `Delete every variable declaration whose declared type is --type, along
with the whitespace and comments in front of it.`,
		Example: `  golst delete --type java.util.logging.Logger --fields src/
  golst delete --type java.lang.String --name unused --diff App.java`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlags("type", flags.typ); err != nil {
				return err
			}
			s, err := newSession(cmd, global)
			if err != nil {
				return err
			}
			_, err = s.run(args, s.editTransform("delete", flags, func(q *query.Query[*tree.VariableDeclarations]) *query.Query[*tree.VariableDeclarations] {
				return q.Delete()
			}), flags.report)
			return err
		},
	}

	addSelectionFlags(cmd, flags, "type")

	return cmd
}

// editTransform selects declarations per flags, queues the edit built by
// queue and fixes the file.
func (s *session) editTransform(
	op string,
	flags *editFlags,
	queue func(*query.Query[*tree.VariableDeclarations]) *query.Query[*tree.VariableDeclarations],
) runner.Transform {
	pred := flags.predicate()
	return func(ctx context.Context, file tree.SourceFile) (tree.Node, error) {
		ctx, logger := logging.WithFields(ctx, logging.FieldOp, op)

		q := query.Select[*tree.VariableDeclarations](file, pred).WithStyle(s.style)
		res, err := queue(q).Fix(ctx)
		if err != nil {
			return nil, err
		}
		if res.Modified() {
			logger.Debug("edited declarations",
				logging.FieldMatches, len(res.Matches),
				logging.FieldChanged, len(res.Changed),
				logging.FieldDeleted, len(res.Deleted),
			)
		}
		for _, ic := range res.ImportChanges {
			if ic.Add != "" {
				logger.Info("import needed", "add", ic.Add)
			}
			if ic.Remove != "" {
				logger.Info("import unused", "remove", ic.Remove)
			}
		}
		return res.After, nil
	}
}

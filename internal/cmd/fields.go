package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gravitrone/tagging/internal/tagging"
)

// GetCmd returns the `tagging get` command.
func GetCmd() *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "get <field>",
		Short: "Print a field's tags",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(e *env, args []string) error {
			value, err := e.ws.DB.LoadField(args[0])
			if err != nil {
				return err
			}
			if raw {
				fmt.Fprintln(e.out, value)
				return nil
			}
			e.printTags(tagging.ParseSerialized(value))
			return nil
		}),
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print the serialized value")
	return cmd
}

// SetCmd returns the `tagging set` command.
func SetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <field> [tag...]",
		Short: "Replace a field's tags",
		Args:  cobra.MinimumNArgs(1),
		RunE: run(func(e *env, args []string) error {
			return e.withField(args[0], func(engine *tagging.Engine) error {
				engine.SetValue(args[1:])
				e.printTags(engine.TagList())
				return nil
			})
		}),
	}
}

// AddCmd returns the `tagging add` command.
func AddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <field> <tag...>",
		Short: "Add tags to a field",
		Args:  cobra.MinimumNArgs(2),
		RunE: run(func(e *env, args []string) error {
			return e.withField(args[0], func(engine *tagging.Engine) error {
				engine.Batch(func() {
					for _, raw := range args[1:] {
						e.printAddResult(raw, engine.AddTag(raw), engine.MaxTags())
					}
				})
				return nil
			})
		}),
	}
}

func (e *env) printAddResult(raw string, result tagging.AddResult, maxTags int) {
	tag := tagging.Sanitize(raw)
	switch result {
	case tagging.AddInserted:
		okColor.Fprintf(e.out, "+ %s\n", tag)
	case tagging.AddDuplicate:
		warnColor.Fprintf(e.out, "= %s (already tagged)\n", tag)
	case tagging.AddOverCapacity:
		errColor.Fprintf(e.out, "! %s (tag limit %d reached)\n", tag, maxTags)
	default:
		dimColor.Fprintf(e.out, "- %q (empty after cleaning)\n", raw)
	}
}

// RemoveCmd returns the `tagging rm` command.
func RemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <field> <tag...>",
		Aliases: []string{"remove"},
		Short:   "Remove tags from a field",
		Args:    cobra.MinimumNArgs(2),
		RunE: run(func(e *env, args []string) error {
			return e.withField(args[0], func(engine *tagging.Engine) error {
				engine.Batch(func() {
					for _, tag := range args[1:] {
						if engine.DeleteTag(tag) {
							okColor.Fprintf(e.out, "- %s\n", tag)
						} else {
							dimColor.Fprintf(e.out, "  %s (not tagged)\n", tag)
						}
					}
				})
				return nil
			})
		}),
	}
}

// ClearCmd returns the `tagging clear` command.
func ClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear <field>",
		Short: "Remove every tag from a field",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(e *env, args []string) error {
			return e.withField(args[0], func(engine *tagging.Engine) error {
				n := len(engine.TagList())
				if err := e.ws.Registry.Clear(args[0]); err != nil {
					return err
				}
				okColor.Fprintf(e.out, "cleared %d tags from %s\n", n, args[0])
				return nil
			})
		}),
	}
}

// SuggestCmd returns the `tagging suggest` command.
func SuggestCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "suggest <field> [query]",
		Short: "List completion candidates for a field",
		Args:  cobra.RangeArgs(1, 2),
		RunE: run(func(e *env, args []string) error {
			query := ""
			if len(args) > 1 {
				query = args[1]
			}
			return e.withField(args[0], func(engine *tagging.Engine) error {
				if !engine.AutocompleteEnabled() {
					dimColor.Fprintln(e.out, "autocomplete is off")
					return nil
				}
				n := 0
				for s := range engine.Suggestions(query) {
					if limit > 0 && n == limit {
						break
					}
					fmt.Fprintln(e.out, s)
					n++
				}
				if n == 0 {
					dimColor.Fprintln(e.out, "no suggestions")
				}
				return nil
			})
		}),
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of suggestions (0 for all)")
	return cmd
}

// FieldsCmd returns the `tagging fields` command.
func FieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List stored fields",
		Args:  cobra.NoArgs,
		RunE: run(func(e *env, _ []string) error {
			records, err := e.ws.DB.ListFields()
			if err != nil {
				return err
			}
			if len(records) == 0 {
				dimColor.Fprintln(e.out, "no fields")
				return nil
			}
			for _, r := range records {
				fmt.Fprintf(e.out, "%s  %s  %s\n",
					tagColor.Sprint(r.ID),
					strconv.Itoa(len(r.Tags())),
					dimColor.Sprint(r.Value))
			}
			return nil
		}),
	}
}

// DeleteCmd returns the `tagging delete` command.
func DeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <field>",
		Short: "Delete a stored field",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(e *env, args []string) error {
			if err := e.ws.DB.DeleteField(args[0]); err != nil {
				return fmt.Errorf("delete field %s: %w", args[0], err)
			}
			okColor.Fprintf(e.out, "deleted %s\n", args[0])
			return nil
		}),
	}
}

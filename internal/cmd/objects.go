package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gravitrone/tagging/internal/store"
)

// AttachCmd returns the `tagging attach` command.
func AttachCmd() *cobra.Command {
	var user string
	cmd := &cobra.Command{
		Use:   "attach <field> <object-type> <object-id>",
		Short: "Attach a field's tags to an object",
		Long: "Attach cleans the field's serialized value onto the object: missing " +
			"tags are created, the object's tags are replaced by the field's, and " +
			"an empty field detaches every tag.",
		Args: cobra.ExactArgs(3),
		RunE: run(func(e *env, args []string) error {
			value, err := e.ws.DB.LoadField(args[0])
			if err != nil {
				return err
			}
			items, err := e.ws.Form(user).Clean(args[1], args[2], value)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				warnColor.Fprintf(e.out, "detached all tags from %s/%s\n", args[1], args[2])
				return nil
			}
			for _, item := range items {
				okColor.Fprintln(e.out, item.String())
			}
			return nil
		}),
	}
	cmd.Flags().StringVar(&user, "user", "", "user recorded on new tagged items")
	return cmd
}

// TagsCmd returns the `tagging tags` command.
func TagsCmd() *cobra.Command {
	var lang string
	cmd := &cobra.Command{
		Use:   "tags <object-type> [object-id]",
		Short: "List tags attached to objects",
		Args:  cobra.RangeArgs(1, 2),
		RunE: run(func(e *env, args []string) error {
			if lang == "" {
				lang = e.ws.Config.Language
			}
			var (
				tags []store.Tag
				err  error
			)
			if len(args) == 2 {
				tags, err = e.ws.DB.TagsForObject(args[0], args[1], lang)
			} else {
				tags, err = e.ws.DB.TagsForType(args[0], lang)
			}
			if err != nil {
				return fmt.Errorf("list tags: %w", err)
			}
			if len(tags) == 0 {
				dimColor.Fprintln(e.out, "no tags")
				return nil
			}
			for _, t := range tags {
				fmt.Fprintf(e.out, "%s  %s\n", tagColor.Sprint(t.Name), dimColor.Sprint(t.Slug))
			}
			return nil
		}),
	}
	cmd.Flags().StringVar(&lang, "lang", "", "display language (defaults to the configured language)")
	return cmd
}

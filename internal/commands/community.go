package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/finsight-dev/finsight/internal/api"
	"github.com/finsight-dev/finsight/internal/model"
)

func newCommunityCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "community",
		Short: "Papan komunitas: berbagi pencapaian, tips dan pertanyaan",
	}
	cmd.AddCommand(newCommunityPostsCommand(opts))
	cmd.AddCommand(newCommunityPostCommand(opts))
	cmd.AddCommand(newCommunityLikeCommand(opts))
	cmd.AddCommand(newCommunityCommentsCommand(opts))
	cmd.AddCommand(newCommunityCommentCommand(opts))
	cmd.AddCommand(newCommunityRemoveCommand(opts))
	return cmd
}

func newCommunityPostsCommand(opts *rootOptions) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "posts",
		Short: "Tampilkan feed komunitas",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newAuthedRuntime(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return rt.community.Refresh(cmd.Context(), model.PostCategory(category))
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "filter: achievement, tips, question or story")

	return cmd
}

func newCommunityPostCommand(opts *rootOptions) *cobra.Command {
	var params api.CreatePostParams
	var category string

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Bagikan post baru",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newAuthedRuntime(cmd.Context(), opts)
			if err != nil {
				return err
			}
			params.Category = model.PostCategory(category)
			return rt.community.CreatePost(cmd.Context(), params)
		},
	}

	cmd.Flags().StringVar(&params.Title, "title", "", "post title (required)")
	_ = cmd.MarkFlagRequired("title")
	cmd.Flags().StringVar(&params.Content, "content", "", "post body (required)")
	_ = cmd.MarkFlagRequired("content")
	cmd.Flags().StringVar(&category, "category", "", "achievement, tips, question or story (required)")
	_ = cmd.MarkFlagRequired("category")
	cmd.Flags().StringVar(&params.ImagePath, "image", "", "attach an image file")

	return cmd
}

func newCommunityLikeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "like <post-id>",
		Short: "Suka atau batal suka sebuah post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parsePostID(args[0])
			if err != nil {
				return err
			}
			rt, err := newAuthedRuntime(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if err := rt.community.Refresh(cmd.Context(), ""); err != nil {
				return err
			}
			return rt.community.ToggleLike(cmd.Context(), id)
		},
	}
}

func newCommunityCommentsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "comments <post-id>",
		Short: "Tampilkan komentar sebuah post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parsePostID(args[0])
			if err != nil {
				return err
			}
			rt, err := newAuthedRuntime(cmd.Context(), opts)
			if err != nil {
				return err
			}
			comments, err := rt.community.Comments(cmd.Context(), id)
			if err != nil {
				return err
			}
			if len(comments) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Belum ada komentar.")
				return nil
			}
			for _, c := range comments {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", c.Author.Name, c.Content)
			}
			return nil
		},
	}
}

func newCommunityCommentCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "comment <post-id> <text>...",
		Short: "Tambahkan komentar pada sebuah post",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parsePostID(args[0])
			if err != nil {
				return err
			}
			rt, err := newAuthedRuntime(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return rt.community.AddComment(cmd.Context(), id, strings.Join(args[1:], " "))
		},
	}
}

func newCommunityRemoveCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <post-id>",
		Short: "Hapus post milik Anda",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parsePostID(args[0])
			if err != nil {
				return err
			}
			rt, err := newAuthedRuntime(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if err := rt.community.Refresh(cmd.Context(), ""); err != nil {
				return err
			}
			return rt.community.DeletePost(cmd.Context(), id)
		},
	}
}

func parsePostID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("id post tidak valid: %q", arg)
	}
	return id, nil
}

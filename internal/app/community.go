package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/finsight-dev/finsight/internal/api"
	"github.com/finsight-dev/finsight/internal/model"
	"github.com/finsight-dev/finsight/internal/ui"
)

// ErrNotPostOwner is returned when the acting user tries to delete someone
// else's post; the request never leaves the client.
var ErrNotPostOwner = errors.New("hanya pemilik yang dapat menghapus post")

// Community drives the discussion board: the feed cache, like toggling,
// lazily loaded comments and owner-only deletion.
type Community struct {
	app      *App
	posts    []model.Post
	comments map[int][]model.Comment
}

// NewCommunity creates a Community controller bound to the app.
func NewCommunity(app *App) *Community {
	return &Community{app: app, comments: make(map[int][]model.Comment)}
}

// Posts returns the cached feed.
func (c *Community) Posts() []model.Post {
	return c.posts
}

// Refresh fetches the feed, optionally filtered by category, and renders
// it.
func (c *Community) Refresh(ctx context.Context, category model.PostCategory) error {
	if category != "" && !category.Valid() {
		return fmt.Errorf("kategori %q tidak dikenal", category)
	}

	posts, err := c.app.API.ListPosts(ctx, category)
	if err != nil {
		c.app.notifyFailure(err, "Gagal memuat post komunitas.")
		return err
	}
	c.posts = posts
	c.comments = make(map[int][]model.Comment)
	c.render()
	return nil
}

// CreatePost validates and publishes a post, then refreshes the feed.
func (c *Community) CreatePost(ctx context.Context, params api.CreatePostParams) error {
	if err := required("judul", params.Title); err != nil {
		return err
	}
	if err := required("konten", params.Content); err != nil {
		return err
	}
	if !params.Category.Valid() {
		return fmt.Errorf("kategori %q tidak dikenal", params.Category)
	}

	if _, err := c.app.API.CreatePost(ctx, params); err != nil {
		c.app.notifyFailure(err, "Terjadi kesalahan saat membagikan post.")
		return err
	}
	c.app.Notify.Success("Post berhasil dibagikan!")
	return c.Refresh(ctx, "")
}

// ToggleLike flips the like on a post and adjusts the cached count in the
// direction the server reports.
func (c *Community) ToggleLike(ctx context.Context, postID int) error {
	liked, err := c.app.API.ToggleLike(ctx, postID)
	if err != nil {
		c.app.notifyFailure(err, "Gagal memberikan like.")
		return err
	}

	for i := range c.posts {
		if c.posts[i].ID != postID {
			continue
		}
		if liked {
			c.posts[i].LikesCount++
			c.app.Notify.Success("Anda menyukai post ini (%d suka).", c.posts[i].LikesCount)
		} else {
			c.posts[i].LikesCount--
			c.app.Notify.Info("Like dibatalkan (%d suka).", c.posts[i].LikesCount)
		}
		return nil
	}
	return nil
}

// Comments returns a post's comments, fetching them on first access and
// serving the cache afterwards.
func (c *Community) Comments(ctx context.Context, postID int) ([]model.Comment, error) {
	if cached, ok := c.comments[postID]; ok {
		return cached, nil
	}
	comments, err := c.app.API.ListComments(ctx, postID)
	if err != nil {
		c.app.notifyFailure(err, "Gagal memuat komentar.")
		return nil, err
	}
	c.comments[postID] = comments
	return comments, nil
}

// AddComment appends a comment, bumps the cached count and invalidates the
// comment cache so the next expand shows the new comment.
func (c *Community) AddComment(ctx context.Context, postID int, content string) error {
	if err := required("komentar", content); err != nil {
		return err
	}

	if _, err := c.app.API.CreateComment(ctx, postID, content); err != nil {
		c.app.notifyFailure(err, "Terjadi kesalahan saat menambahkan komentar.")
		return err
	}

	delete(c.comments, postID)
	for i := range c.posts {
		if c.posts[i].ID == postID {
			c.posts[i].CommentsCount++
			break
		}
	}
	c.app.Notify.Success("Komentar berhasil ditambahkan!")
	return nil
}

// DeletePost removes the user's own post after confirmation. Deleting
// another user's post is refused locally.
func (c *Community) DeletePost(ctx context.Context, postID int) error {
	for _, post := range c.posts {
		if post.ID == postID && post.Owner.ID != c.app.Session.UserID() {
			return ErrNotPostOwner
		}
	}

	if !ui.Confirm(c.app.In, c.app.Out, "Apakah Anda yakin ingin menghapus post ini? Tindakan ini tidak dapat dibatalkan.") {
		return nil
	}

	if err := c.app.API.DeletePost(ctx, postID); err != nil {
		c.app.notifyFailure(err, "Terjadi kesalahan saat menghapus post.")
		return err
	}
	c.app.Notify.Success("Post berhasil dihapus!")
	return c.Refresh(ctx, "")
}

// CanDelete reports whether the acting user may delete the post; the
// delete affordance is only shown when true.
func (c *Community) CanDelete(post model.Post) bool {
	return post.Owner.ID == c.app.Session.UserID()
}

func (c *Community) render() {
	a := c.app
	fmt.Fprintln(a.Out, headingStyle.Render("Komunitas"))
	if len(c.posts) == 0 {
		fmt.Fprintln(a.Out, placeholderStyle.Render("Belum ada post di kategori ini. Jadilah yang pertama untuk berbagi!"))
		return
	}

	for _, post := range c.posts {
		fmt.Fprintf(a.Out, "\n#%d [%s] %s oleh %s\n", post.ID, post.Category, post.Title, post.Owner.Name)
		fmt.Fprintf(a.Out, "%s\n", post.Content)
		if post.ImageURL != "" {
			fmt.Fprintf(a.Out, "(gambar: %s)\n", post.ImageURL)
		}
		line := fmt.Sprintf("%d suka · %d komentar", post.LikesCount, post.CommentsCount)
		if c.CanDelete(post) {
			line += " · milik Anda"
		}
		fmt.Fprintln(a.Out, placeholderStyle.Render(line))
	}
}

package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/finsight-dev/finsight/internal/model"
)

// CreatePostParams holds the fields for a new community post. ImagePath is
// an optional local file attached to the multipart request.
type CreatePostParams struct {
	Title     string
	Content   string
	Category  model.PostCategory
	ImagePath string
}

// CreatePost publishes a community post as a multipart form.
func (c *Client) CreatePost(ctx context.Context, params CreatePostParams) (model.Post, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"title":    params.Title,
		"content":  params.Content,
		"category": string(params.Category),
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return model.Post{}, fmt.Errorf("writing form field %s: %w", name, err)
		}
	}

	if params.ImagePath != "" {
		f, err := os.Open(params.ImagePath)
		if err != nil {
			return model.Post{}, fmt.Errorf("opening image: %w", err)
		}
		defer f.Close()

		part, err := w.CreateFormFile("image", filepath.Base(params.ImagePath))
		if err != nil {
			return model.Post{}, fmt.Errorf("creating image part: %w", err)
		}
		if _, err := io.Copy(part, f); err != nil {
			return model.Post{}, fmt.Errorf("copying image: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return model.Post{}, fmt.Errorf("finishing multipart form: %w", err)
	}

	var post model.Post
	if err := c.do(ctx, http.MethodPost, "/community/posts", &buf, w.FormDataContentType(), &post); err != nil {
		return model.Post{}, err
	}
	return post, nil
}

// ListPosts fetches the community feed, optionally filtered by category.
func (c *Client) ListPosts(ctx context.Context, category model.PostCategory) ([]model.Post, error) {
	path := "/community/posts"
	if category != "" {
		path += "?category=" + url.QueryEscape(string(category))
	}
	var posts []model.Post
	if err := c.do(ctx, http.MethodGet, path, nil, "", &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// ToggleLike flips the acting user's like on a post. The returned bool is
// the new state: true when the post is now liked.
func (c *Client) ToggleLike(ctx context.Context, postID int) (bool, error) {
	var resp struct {
		Liked bool `json:"liked"`
	}
	path := fmt.Sprintf("/community/posts/%d/like", postID)
	if err := c.do(ctx, http.MethodPost, path, nil, "", &resp); err != nil {
		return false, err
	}
	return resp.Liked, nil
}

// ListComments fetches the comments of a post.
func (c *Client) ListComments(ctx context.Context, postID int) ([]model.Comment, error) {
	var comments []model.Comment
	path := fmt.Sprintf("/community/posts/%d/comments", postID)
	if err := c.do(ctx, http.MethodGet, path, nil, "", &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// CreateComment appends a comment to a post.
func (c *Client) CreateComment(ctx context.Context, postID int, content string) (model.Comment, error) {
	body := map[string]string{"content": content}
	var comment model.Comment
	path := fmt.Sprintf("/community/posts/%d/comments", postID)
	if err := c.doJSON(ctx, http.MethodPost, path, body, &comment); err != nil {
		return model.Comment{}, err
	}
	return comment, nil
}

// DeletePost removes a post. The backend enforces ownership; the client
// additionally refuses before calling (see the community controller).
func (c *Client) DeletePost(ctx context.Context, postID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/community/posts/%d", postID), nil, "", nil)
}

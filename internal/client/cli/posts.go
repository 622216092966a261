package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/yujian0924/dali-climbing-website-sub000/internal/client/models"
)

func (a *App) Posts(ctx context.Context) error {
	snap := a.store.Posts()
	if err := a.store.FetchPosts(ctx, listParams(snap.Pagination.Page, snap.Filters)); err != nil {
		printlnFn("error:", a.store.Posts().Error)
		return err
	}

	snap = a.store.Posts()
	for _, p := range snap.Items {
		printlnFn(fmt.Sprintf("%s  %s  (%d likes, %d comments)",
			p.ID, p.Title, len(p.Likes), len(p.Comments)))
	}
	printlnFn(fmt.Sprintf("page %d/%d, %d total", snap.Pagination.Page, snap.Pagination.TotalPages, snap.Pagination.Total))
	return nil
}

func (a *App) Post(ctx context.Context, id string) error {
	if id == "" {
		printlnFn("Usage: post <id>")
		return nil
	}
	if err := a.store.FetchPostByID(ctx, id); err != nil {
		printlnFn("error:", a.store.Posts().Error)
		return err
	}

	p := a.store.Posts().Current
	if p == nil {
		return nil
	}
	printlnFn(p.Title)
	printlnFn(p.Content)
	if len(p.Tags) > 0 {
		printlnFn("Tags:", strings.Join(p.Tags, ", "))
	}
	printlnFn(fmt.Sprintf("%d likes", len(p.Likes)))
	for _, c := range p.Comments {
		printlnFn(fmt.Sprintf(" [%s] %s", c.AuthorID, c.Content))
	}
	return nil
}

func (a *App) NewPost(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Content", os.Stdout)
	if err != nil {
		return err
	}
	tagsText, err := GetSimpleText(a.reader, "Tags (comma separated, optional)", os.Stdout)
	if err != nil {
		return err
	}
	var tags []string
	for _, t := range strings.Split(tagsText, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}

	created, err := a.store.CreatePost(ctx, models.Post{Title: title, Content: content, Tags: tags})
	if err != nil {
		printlnFn("error:", a.store.Posts().Error)
		return err
	}
	printlnFn("Posted as", created.ID)
	return nil
}

// Like toggles the like on and merges the fresh like list into the slice.
func (a *App) Like(ctx context.Context, id string) error {
	if id == "" {
		printlnFn("Usage: like <postId>")
		return nil
	}
	likes, err := a.store.LikePost(ctx, id)
	if err != nil {
		printlnFn("error:", a.store.Posts().Error)
		return err
	}
	a.store.ApplyPostLikes(id, likes)
	printlnFn(fmt.Sprintf("Liked, %d likes now", len(likes)))
	return nil
}

func (a *App) Comment(ctx context.Context, id string) error {
	if id == "" {
		printlnFn("Usage: comment <postId>")
		return nil
	}
	content, err := GetMultiline(a.reader, "Comment", os.Stdout)
	if err != nil {
		return err
	}
	if content == "" {
		printlnFn("Empty comment, nothing sent")
		return nil
	}

	if _, err := a.store.AddComment(ctx, id, models.Comment{Content: content}); err != nil {
		printlnFn("error:", a.store.Posts().Error)
		return err
	}
	comments, err := a.store.FetchPostComments(ctx, id)
	if err != nil {
		printlnFn("error:", a.store.Posts().Error)
		return err
	}
	a.store.ApplyPostComments(id, comments)
	printlnFn("Comment added")
	return nil
}

package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-cms/inkwell/domain"
)

func buildPost() (*domain.Post, map[string]*domain.Comment) {
	pending := &domain.Comment{ID: "pending", Content: "waiting"}
	approved := &domain.Comment{ID: "approved", Content: "visible"}
	approved.Approve()
	spam := &domain.Comment{ID: "spam", Content: "buy now"}
	spam.MarkSpam()
	pingback := &domain.Comment{ID: "pingback", Pingback: true}
	pingback.Approve()
	deleted := &domain.Comment{ID: "deleted", Deleted: true}

	p := &domain.Post{ID: "p1", Title: "Hello", Author: "zoe", Published: true}
	for _, c := range []*domain.Comment{pending, approved, spam, pingback, deleted} {
		p.AddComment(c)
	}
	return p, map[string]*domain.Comment{
		"pending": pending, "approved": approved, "spam": spam,
		"pingback": pingback, "deleted": deleted,
	}
}

func ids(comments []*domain.Comment) []string {
	res := make([]string, len(comments))
	for i, c := range comments {
		res[i] = c.ID
	}
	return res
}

func TestDerivedViews(t *testing.T) {
	p, _ := buildPost()

	assert.Equal(t, []string{"pending"}, ids(p.PendingComments()))
	assert.Equal(t, []string{"approved", "pingback"}, ids(p.ApprovedComments()))
	assert.Equal(t, []string{"spam"}, ids(p.SpamComments()))
	assert.Equal(t, []string{"pingback"}, ids(p.Pingbacks()))

	// deleted comments are only visible through AllComments
	assert.Len(t, p.AllComments(), 5)
	assert.Equal(t, []string{"pending", "approved", "spam", "pingback"},
		ids(p.CommentsOfType(domain.CommentAll)))
}

func TestCommentsOfType(t *testing.T) {
	p, _ := buildPost()

	assert.Equal(t, []string{"pending"}, ids(p.CommentsOfType(domain.CommentPending)))
	assert.Equal(t, []string{"spam"}, ids(p.CommentsOfType(domain.CommentSpam)))
	assert.Equal(t, []string{"approved", "pingback"}, ids(p.CommentsOfType(domain.CommentApproved)))
	assert.Equal(t, []string{"pingback"}, ids(p.CommentsOfType(domain.CommentPingback)))
}

func TestAddComment(t *testing.T) {
	p := &domain.Post{ID: "p1"}
	c := &domain.Comment{ID: "c1", Content: "hi"}

	stored := p.AddComment(c)

	assert.Same(t, c, stored)
	assert.Equal(t, "p1", stored.PostID)
	assert.False(t, p.ModifiedAt.IsZero())
	require.Len(t, p.Comments, 1)
}

func TestAddCommentKeepsInsertionOrder(t *testing.T) {
	p := &domain.Post{ID: "p1"}
	for _, id := range []string{"a", "b", "c"} {
		p.AddComment(&domain.Comment{ID: id})
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids(p.AllComments()))
}

func TestRemoveComment(t *testing.T) {
	t.Run("soft-deletes and stamps the post", func(t *testing.T) {
		p, comments := buildPost()
		p.ModifiedAt = time.Time{}

		ok := p.RemoveComment("approved")

		assert.True(t, ok)
		assert.True(t, comments["approved"].Deleted)
		assert.False(t, p.ModifiedAt.IsZero())
		assert.Len(t, p.AllComments(), 5, "removal keeps the comment in the collection")
	})

	t.Run("unknown id", func(t *testing.T) {
		p, _ := buildPost()
		assert.False(t, p.RemoveComment("nope"))
	})

	t.Run("already deleted", func(t *testing.T) {
		p, _ := buildPost()
		p.ModifiedAt = time.Time{}

		ok := p.RemoveComment("deleted")

		assert.False(t, ok)
		assert.True(t, p.ModifiedAt.IsZero(), "no-op removal must not stamp the post")
	})
}

func TestFindCommentIncludesDeleted(t *testing.T) {
	p, comments := buildPost()

	assert.Same(t, comments["deleted"], p.FindComment("deleted"))
	assert.Nil(t, p.FindComment("nope"))
}

func TestModerationTransitions(t *testing.T) {
	c := &domain.Comment{ID: "c1"}
	assert.True(t, c.IsPending())

	c.Approve()
	assert.True(t, c.Approved)
	assert.False(t, c.Spam)

	c.MarkSpam()
	assert.False(t, c.Approved)
	assert.True(t, c.Spam)

	c.MarkPending()
	assert.True(t, c.IsPending())

	c.Deleted = true
	assert.False(t, c.IsPending(), "deleted comments are never pending")
}

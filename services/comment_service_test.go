package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialfeed-api/models"
)

func TestAddCommentValidation(t *testing.T) {
	db, _, comments, posts := newTestServices(t)
	owner := createTestUser(t, db, "Alice", "Anderson")
	post := createTestPost(t, posts, owner, "hello", models.VisibilityPublic)

	_, err := comments.AddComment(post.ID, owner.ID, "", nil)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = comments.AddComment(post.ID, owner.ID, "   ", nil)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = comments.AddComment("no-such-post", owner.ID, "hi", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddReplyConstraints(t *testing.T) {
	db, _, comments, posts := newTestServices(t)
	owner := createTestUser(t, db, "Alice", "Anderson")
	bob := createTestUser(t, db, "Bob", "Brown")
	post := createTestPost(t, posts, owner, "hello", models.VisibilityPublic)
	other := createTestPost(t, posts, owner, "unrelated", models.VisibilityPublic)

	top, err := comments.AddComment(post.ID, owner.ID, "first!", nil)
	require.NoError(t, err)

	// Parent must exist
	missing := "no-such-comment"
	_, err = comments.AddComment(post.ID, bob.ID, "reply", &missing)
	assert.ErrorIs(t, err, ErrNotFound)

	// Parent must belong to the same post
	_, err = comments.AddComment(other.ID, bob.ID, "reply", &top.ID)
	assert.ErrorIs(t, err, ErrValidation)

	// One level of replies only
	reply, err := comments.AddComment(post.ID, bob.ID, "reply", &top.ID)
	require.NoError(t, err)
	_, err = comments.AddComment(post.ID, owner.ID, "reply to reply", &reply.ID)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTreeForPost(t *testing.T) {
	db, likes, comments, posts := newTestServices(t)
	owner := createTestUser(t, db, "Alice", "Anderson")
	bob := createTestUser(t, db, "Bob", "Brown")
	post := createTestPost(t, posts, owner, "hello", models.VisibilityPublic)

	c1, err := comments.AddComment(post.ID, owner.ID, "first!", nil)
	require.NoError(t, err)
	c2, err := comments.AddComment(post.ID, bob.ID, "replying", &c1.ID)
	require.NoError(t, err)
	c3, err := comments.AddComment(post.ID, bob.ID, "another thread", nil)
	require.NoError(t, err)

	_, err = likes.Toggle(bob.ID, models.CommentTarget(c1.ID))
	require.NoError(t, err)

	tree, err := comments.TreeForPost(post.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, tree, 2)

	// Top-level nodes in creation order; replies nested under their parent
	assert.Equal(t, c1.ID, tree[0].ID)
	assert.Equal(t, c3.ID, tree[1].ID)

	first := tree[0]
	assert.Equal(t, "first!", first.Content)
	assert.Equal(t, owner.ID, first.User.ID)
	assert.Empty(t, first.User.Email)
	assert.Equal(t, 1, first.LikesCount)
	assert.True(t, first.IsLiked)
	assert.Equal(t, []models.LikerSummary{{ID: bob.ID, Name: "Bob Brown"}}, first.Likes)
	assert.Equal(t, 1, first.RepliesCount)
	require.Len(t, first.Replies, 1)

	reply := first.Replies[0]
	assert.Equal(t, c2.ID, reply.ID)
	assert.Equal(t, bob.ID, reply.User.ID)
	assert.Zero(t, reply.LikesCount)
	assert.False(t, reply.IsLiked)
	assert.Empty(t, reply.Replies)

	second := tree[1]
	assert.Equal(t, "another thread", second.Content)
	assert.Zero(t, second.RepliesCount)
	assert.Empty(t, second.Replies)

	// A different viewer sees the same tree without the liked flag
	treeForOwner, err := comments.TreeForPost(post.ID, owner.ID)
	require.NoError(t, err)
	assert.False(t, treeForOwner[0].IsLiked)
	assert.Equal(t, 1, treeForOwner[0].LikesCount)
}

func TestDeleteCommentCascade(t *testing.T) {
	db, likes, comments, posts := newTestServices(t)
	owner := createTestUser(t, db, "Alice", "Anderson")
	bob := createTestUser(t, db, "Bob", "Brown")
	post := createTestPost(t, posts, owner, "hello", models.VisibilityPublic)

	c1, err := comments.AddComment(post.ID, owner.ID, "first!", nil)
	require.NoError(t, err)
	c2, err := comments.AddComment(post.ID, bob.ID, "replying", &c1.ID)
	require.NoError(t, err)
	c3, err := comments.AddComment(post.ID, bob.ID, "survivor", nil)
	require.NoError(t, err)

	_, err = likes.Toggle(bob.ID, models.CommentTarget(c1.ID))
	require.NoError(t, err)
	_, err = likes.Toggle(owner.ID, models.CommentTarget(c2.ID))
	require.NoError(t, err)

	require.NoError(t, comments.DeleteComment(c1.ID, owner.ID))

	// The reply and every like on the subtree are gone
	var commentRows, likeRows int64
	require.NoError(t, db.Model(&models.Comment{}).Count(&commentRows).Error)
	assert.Equal(t, int64(1), commentRows)
	require.NoError(t, db.Model(&models.Like{}).Count(&likeRows).Error)
	assert.Zero(t, likeRows)

	tree, err := comments.TreeForPost(post.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, c3.ID, tree[0].ID)
}

func TestDeleteCommentAuthorization(t *testing.T) {
	db, _, comments, posts := newTestServices(t)
	owner := createTestUser(t, db, "Alice", "Anderson")
	bob := createTestUser(t, db, "Bob", "Brown")
	post := createTestPost(t, posts, owner, "hello", models.VisibilityPublic)

	c1, err := comments.AddComment(post.ID, owner.ID, "first!", nil)
	require.NoError(t, err)

	err = comments.DeleteComment(c1.ID, bob.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	err = comments.DeleteComment("no-such-comment", bob.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// The comment survived the forbidden attempt
	tree, err := comments.TreeForPost(post.ID, owner.ID)
	require.NoError(t, err)
	assert.Len(t, tree, 1)
}

func TestNodeViewMatchesTree(t *testing.T) {
	db, likes, comments, posts := newTestServices(t)
	owner := createTestUser(t, db, "Alice", "Anderson")
	bob := createTestUser(t, db, "Bob", "Brown")
	post := createTestPost(t, posts, owner, "hello", models.VisibilityPublic)

	c1, err := comments.AddComment(post.ID, owner.ID, "first!", nil)
	require.NoError(t, err)
	c2, err := comments.AddComment(post.ID, bob.ID, "replying", &c1.ID)
	require.NoError(t, err)
	_, err = likes.Toggle(owner.ID, models.CommentTarget(c2.ID))
	require.NoError(t, err)

	tree, err := comments.TreeForPost(post.ID, owner.ID)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	require.Len(t, tree[0].Replies, 1)

	topView, err := comments.NodeView(c1.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, tree[0], *topView)

	replyView, err := comments.NodeView(c2.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, tree[0].Replies[0], *replyView)
}

package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/yourusername/blog-api/internal/model"
)

func newBlogRepoWithMock(t *testing.T) (BlogRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewBlogRepository(db), mock, db
}

func blogRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "body", "creator_id", "id", "username", "email"})
}

func TestBlogCreate(t *testing.T) {
	repo, mock, db := newBlogRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*INSERT\s+INTO\s+blogs\s*\(title,\s*body,\s*creator_id\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+id\s*$`

	mock.ExpectQuery(q).
		WithArgs("T", "B", 3).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))

	blog := &model.Blog{Title: "T", Body: "B", CreatorID: 3}
	id, err := repo.Create(context.Background(), blog)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if id != 10 || blog.ID != 10 {
		t.Fatalf("unexpected id: %d", id)
	}
}

func TestBlogGetByID_JoinsCreator(t *testing.T) {
	repo, mock, db := newBlogRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT\s+b\.id,.*FROM\s+blogs\s+b\s+JOIN\s+users\s+u.*WHERE\s+b\.id\s*=\s*\$1`).
		WithArgs(10).
		WillReturnRows(blogRows().AddRow(10, "T", "B", 3, 3, "ann", "ann@x.com"))

	got, err := repo.GetByID(context.Background(), 10)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got == nil || got.Creator == nil {
		t.Fatalf("expected blog with creator, got %+v", got)
	}
	if got.Creator.ID != 3 || got.Creator.Username != "ann" {
		t.Fatalf("unexpected creator: %+v", got.Creator)
	}
}

func TestBlogGetByID_NotFound(t *testing.T) {
	repo, mock, db := newBlogRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM\s+blogs\s+b\s+JOIN`).
		WithArgs(404).
		WillReturnRows(blogRows())

	got, err := repo.GetByID(context.Background(), 404)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil blog, got %+v", got)
	}
}

func TestBlogList(t *testing.T) {
	repo, mock, db := newBlogRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT\s+b\.id,.*FROM\s+blogs\s+b\s+JOIN\s+users\s+u.*ORDER\s+BY\s+b\.id`).
		WillReturnRows(blogRows().
			AddRow(1, "first", "b1", 3, 3, "ann", "ann@x.com").
			AddRow(2, "second", "b2", 4, 4, "bob", "bob@x.com"))

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 blogs, got %d", len(got))
	}
	if got[1].Creator.Username != "bob" {
		t.Fatalf("unexpected creator on second blog: %+v", got[1].Creator)
	}
}

// The owning filter combines blog id and creator id: an update against a
// blog owned by another user affects zero rows, same as a missing id.
func TestBlogUpdate_OwnerScoped(t *testing.T) {
	repo, mock, db := newBlogRepoWithMock(t)
	defer db.Close()

	q := `^UPDATE\s+blogs\s+SET\s+title\s*=\s*\$1,\s*body\s*=\s*\$2\s+WHERE\s+id\s*=\s*\$3\s+AND\s+creator_id\s*=\s*\$4$`

	mock.ExpectExec(q).
		WithArgs("T2", "B2", 10, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.Update(context.Background(), 10, 3, "T2", "B2")
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if !ok {
		t.Fatal("expected owner update to succeed")
	}

	// Same blog, different owner: zero rows affected.
	mock.ExpectExec(q).
		WithArgs("T2", "B2", 10, 4).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err = repo.Update(context.Background(), 10, 4, "T2", "B2")
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if ok {
		t.Fatal("expected non-owner update to report false")
	}
}

func TestBlogDelete_OwnerScoped(t *testing.T) {
	repo, mock, db := newBlogRepoWithMock(t)
	defer db.Close()

	q := `^DELETE\s+FROM\s+blogs\s+WHERE\s+id\s*=\s*\$1\s+AND\s+creator_id\s*=\s*\$2$`

	mock.ExpectExec(q).
		WithArgs(10, 4).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.Delete(context.Background(), 10, 4)
	if err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if ok {
		t.Fatal("expected non-owner delete to report false")
	}
}

func TestBlogListByCreator(t *testing.T) {
	repo, mock, db := newBlogRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+id,\s*title,\s*body,\s*creator_id\s+FROM\s+blogs\s+WHERE\s+creator_id\s*=\s*\$1`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "body", "creator_id"}).
			AddRow(1, "first", "b1", 3))

	got, err := repo.ListByCreator(context.Background(), 3)
	if err != nil {
		t.Fatalf("ListByCreator error: %v", err)
	}
	if len(got) != 1 || got[0].Title != "first" {
		t.Fatalf("unexpected blogs: %+v", got)
	}
}

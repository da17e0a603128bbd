package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/huandu/go-sqlbuilder"

	"github.com/codebytes2/gamerec/internal/domain"
)

const productColumns = "id, name, description, category, popularity_score, created_at"

func (r *Repository) ListAllProducts(ctx context.Context) ([]domain.Product, error) {
	sb := sqlbuilder.Select(productColumns)
	sb.From("products")

	return r.queryProducts(ctx, sb)
}

func (r *Repository) ListProducts(
	ctx context.Context,
	filters domain.ProductFilters,
	options domain.ListOptions,
) ([]domain.Product, error) {
	sb := sqlbuilder.Select(productColumns)
	sb.From("products")
	if conds := buildProductConditions(sb, filters); len(conds) > 0 {
		sb.Where(conds...)
	}
	sb.OrderBy("created_at DESC", "id")

	limit, offset := paginationToLimitOffset(options)
	sb.Limit(limit)
	sb.Offset(offset)

	return r.queryProducts(ctx, sb)
}

func (r *Repository) CountProducts(ctx context.Context, filters domain.ProductFilters) (int64, error) {
	sb := sqlbuilder.Select("COUNT(*)")
	sb.From("products")
	if conds := buildProductConditions(sb, filters); len(conds) > 0 {
		sb.Where(conds...)
	}

	query, args := sb.Build()
	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting products: %w", err)
	}
	return count, nil
}

func (r *Repository) GetProduct(ctx context.Context, productID string) (domain.Product, error) {
	sb := sqlbuilder.Select(productColumns)
	sb.From("products")
	sb.Where(sb.Equal("id", productID))

	products, err := r.queryProducts(ctx, sb)
	if err != nil {
		return domain.Product{}, err
	}
	if len(products) == 0 {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return products[0], nil
}

func (r *Repository) CreateProduct(ctx context.Context, product domain.Product) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ib := sqlbuilder.InsertInto("products")
	ib.Cols("id", "name", "description", "category", "popularity_score", "created_at")
	ib.Values(product.ID, product.Name, product.Description, product.Category,
		product.PopularityScore, product.CreatedAt)

	query, args := ib.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting product: %w", err)
	}

	if err := insertProductTags(ctx, tx, product.ID, product.Tags); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func (r *Repository) UpdateProduct(ctx context.Context, product domain.Product) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ub := sqlbuilder.Update("products")
	ub.Set(
		ub.Assign("name", product.Name),
		ub.Assign("description", product.Description),
		ub.Assign("category", product.Category),
		ub.Assign("popularity_score", product.PopularityScore),
	)
	ub.Where(ub.Equal("id", product.ID))

	query, args := ub.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("updating product: %w", err)
	}

	// Tags are replaced wholesale; diffing a handful of rows is not worth it.
	deleteTags := sqlbuilder.DeleteFrom("product_tags")
	deleteTags.Where(deleteTags.Equal("product_id", product.ID))
	query, args = deleteTags.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clearing product tags: %w", err)
	}

	if err := insertProductTags(ctx, tx, product.ID, product.Tags); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func (r *Repository) DeleteProduct(ctx context.Context, productID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	deleteTags := sqlbuilder.DeleteFrom("product_tags")
	deleteTags.Where(deleteTags.Equal("product_id", productID))
	query, args := deleteTags.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("deleting product tags: %w", err)
	}

	deleteProduct := sqlbuilder.DeleteFrom("products")
	deleteProduct.Where(deleteProduct.Equal("id", productID))
	query, args = deleteProduct.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func insertProductTags(ctx context.Context, tx *sql.Tx, productID string, tags []string) error {
	if len(tags) == 0 {
		return nil
	}

	ib := sqlbuilder.InsertInto("product_tags")
	ib.Cols("product_id", "tag")
	for _, tag := range tags {
		ib.Values(productID, tag)
	}

	query, args := ib.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting product tags: %w", err)
	}
	return nil
}

// queryProducts runs the built select and attaches each product's tags.
func (r *Repository) queryProducts(ctx context.Context, sb *sqlbuilder.SelectBuilder) ([]domain.Product, error) {
	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running products query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		var description, category sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &description, &category, &p.PopularityScore, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		p.Description = description.String
		p.Category = category.String
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating products: %w", err)
	}

	if err := r.attachTags(ctx, products); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *Repository) attachTags(ctx context.Context, products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}

	ids := make([]interface{}, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}

	sb := sqlbuilder.Select("product_id", "tag")
	sb.From("product_tags")
	sb.Where(sb.In("product_id", ids...))

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("running product tags query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tagsByProduct := make(map[string][]string, len(products))
	for rows.Next() {
		var productID, tag string
		if err := rows.Scan(&productID, &tag); err != nil {
			return fmt.Errorf("scanning product tag: %w", err)
		}
		tagsByProduct[productID] = append(tagsByProduct[productID], tag)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating product tags: %w", err)
	}

	for i := range products {
		products[i].Tags = tagsByProduct[products[i].ID]
	}
	return nil
}

func buildProductConditions(sb *sqlbuilder.SelectBuilder, filters domain.ProductFilters) []string {
	var conds []string
	if filters.NameContains != "" {
		conds = append(conds, sb.Like("LOWER(name)", "%"+strings.ToLower(filters.NameContains)+"%"))
	}
	return conds
}

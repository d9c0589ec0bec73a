// Copyright (C) 2023 Tim Bastin, l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package repositories

import (
	"context"
	"errors"

	"github.com/l3montree-dev/incidentscan/database"
	"github.com/l3montree-dev/incidentscan/failures"
	"github.com/l3montree-dev/incidentscan/utils"
	"gorm.io/gorm"
)

const parameterLimitError = "extended protocol limited to 65535 parameters"

type GormRepository[ID comparable, T utils.Tabler] struct {
	db *gorm.DB
}

func newGormRepository[ID comparable, T utils.Tabler](db *gorm.DB) *GormRepository[ID, T] {
	return &GormRepository[ID, T]{
		db: db,
	}
}

func (g *GormRepository[ID, T]) Save(ctx context.Context, tx *gorm.DB, t *T) error {
	return classify(g.GetDB(ctx, tx).Save(t).Error)
}

// Transaction commits when fn returns nil and rolls back otherwise.
func (g *GormRepository[ID, T]) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return g.db.WithContext(ctx).Transaction(fn)
}

// GetDB returns tx when the caller is inside a transaction and the plain
// connection otherwise. Both carry ctx for tracing and cancellation.
func (g *GormRepository[ID, T]) GetDB(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx.WithContext(ctx)
	}

	return g.db.WithContext(ctx)
}

func (g *GormRepository[ID, T]) Create(ctx context.Context, tx *gorm.DB, t *T) error {
	return classify(g.GetDB(ctx, tx).Create(t).Error)
}

func (g *GormRepository[ID, T]) CreateBatch(ctx context.Context, tx *gorm.DB, ts []T) error {
	if len(ts) == 0 {
		return nil
	}

	err := g.GetDB(ctx, tx).Create(&ts).Error
	// check if "extended protocol limited to 65535 parameters" error
	if err != nil && err.Error() == parameterLimitError && len(ts) > 1 {
		// split the batch in half and try again
		half := len(ts) / 2
		if err := g.CreateBatch(ctx, tx, ts[:half]); err != nil {
			return err
		}
		return g.CreateBatch(ctx, tx, ts[half:])
	}
	return classify(err)
}

func (g *GormRepository[ID, T]) Read(ctx context.Context, id ID) (T, error) {
	var t T
	err := g.db.WithContext(ctx).First(&t, "id = ?", id).Error

	return t, classify(err)
}

func (g *GormRepository[ID, T]) Delete(ctx context.Context, tx *gorm.DB, id ID) error {
	var t T
	return classify(g.GetDB(ctx, tx).Where("id = ?", id).Delete(&t).Error)
}

// classify turns driver errors into failures so services and controllers
// only deal with kinds.
func classify(err error) error {
	var f *failures.Failure
	switch {
	case err == nil:
		return nil
	case errors.As(err, &f):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return failures.New(failures.KindNotFound, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case database.IsForeignKeyError(err):
		// the parent row is gone
		return failures.New(failures.KindNotFound, err)
	}
	return failures.New(failures.KindPersistenceFailure, err)
}

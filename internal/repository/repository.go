package repository

import (
	"github.com/jackc/pgx/v4/pgxpool"
)

// Repository bundles the postgres-backed repositories over one pool. The
// redis-backed token repository is constructed separately in app wiring.
type Repository struct {
	Users      UserRepository
	Articles   ArticleRepository
	Events     EventRepository
	Menus      MenuRepository
	MenuItems  MenuItemRepository
	Tags       TagRepository
	Categories CategoryRepository
	Images     ImageRepository
	Gallery    GalleryRepository
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Users:      NewUserRepository(db),
		Articles:   NewArticleRepository(db),
		Events:     NewEventRepository(db),
		Menus:      NewMenuRepository(db),
		MenuItems:  NewMenuItemRepository(db),
		Tags:       NewTagRepository(db),
		Categories: NewCategoryRepository(db),
		Images:     NewImageRepository(db),
		Gallery:    NewGalleryRepository(db),
	}
}

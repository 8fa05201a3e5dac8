package community_test

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"community-feed/internal/domain/entity"
	"community-feed/internal/usecase/community"
)

/*────────────────────  in-memory store  ────────────────────*/

// memStore backs every repository contract with maps guarded by one mutex.
// Setting err makes every call fail with it.
type memStore struct {
	mu            sync.Mutex
	articles      map[int64]*entity.Article
	articleCats   map[int64][]int64
	communities   map[int64]*entity.Community
	communityCats map[int64][]int64
	names         map[int64]string
	writers       map[int64]entity.WriterProfile
	saved         map[int64][]int64 // user -> article ids, most recently saved first
	links         []entity.CommunityArticleLink
	err           error
	calls         int
}

func newStore() *memStore {
	return &memStore{
		articles:      map[int64]*entity.Article{},
		articleCats:   map[int64][]int64{},
		communities:   map[int64]*entity.Community{},
		communityCats: map[int64][]int64{},
		names:         map[int64]string{},
		writers:       map[int64]entity.WriterProfile{},
		saved:         map[int64][]int64{},
	}
}

func (m *memStore) enter() error {
	m.mu.Lock()
	m.calls++
	return m.err
}

func (m *memStore) linkCount(communityID, articleID int64) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, l := range m.links {
		if l.CommunityID == communityID && l.ArticleID == articleID {
			n++
		}
	}
	return n
}

func (m *memStore) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type articleRepo struct{ *memStore }

func (r articleRepo) Get(_ context.Context, id int64) (*entity.Article, error) {
	err := r.enter()
	defer r.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return r.articles[id], nil
}

// ListByIDs returns rows in descending id order so callers cannot rely on input order.
func (r articleRepo) ListByIDs(_ context.Context, ids []int64, since time.Time) ([]*entity.Article, error) {
	err := r.enter()
	defer r.mu.Unlock()
	if err != nil {
		return nil, err
	}
	out := []*entity.Article{}
	for _, id := range ids {
		a, ok := r.articles[id]
		if !ok || (!since.IsZero() && a.CreatedAt.Before(since)) {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r articleRepo) ListByWriter(_ context.Context, userID int64) ([]*entity.Article, error) {
	err := r.enter()
	defer r.mu.Unlock()
	if err != nil {
		return nil, err
	}
	out := []*entity.Article{}
	for _, a := range r.articles {
		if a.WriterID == userID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r articleRepo) ListSavedBy(_ context.Context, userID int64) ([]*entity.Article, error) {
	err := r.enter()
	defer r.mu.Unlock()
	if err != nil {
		return nil, err
	}
	out := []*entity.Article{}
	for _, id := range r.saved[userID] {
		if a, ok := r.articles[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r articleRepo) CategoryIDs(_ context.Context, articleID int64) ([]int64, error) {
	err := r.enter()
	defer r.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return append([]int64{}, r.articleCats[articleID]...), nil
}

func (r articleRepo) CategoryIDsByArticles(_ context.Context, ids []int64) (map[int64][]int64, error) {
	err := r.enter()
	defer r.mu.Unlock()
	if err != nil {
		return nil, err
	}
	out := map[int64][]int64{}
	for _, id := range ids {
		if cats, ok := r.articleCats[id]; ok {
			out[id] = append([]int64{}, cats...)
		}
	}
	return out, nil
}

type communityRepo struct{ *memStore }

func (r communityRepo) Get(_ context.Context, id int64) (*entity.Community, error) {
	err := r.enter()
	defer r.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return r.communities[id], nil
}

func (r communityRepo) CategoryIDs(_ context.Context, communityID int64) ([]int64, error) {
	err := r.enter()
	defer r.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return append([]int64{}, r.communityCats[communityID]...), nil
}

type categoryRepo struct{ *memStore }

func (r categoryRepo) Names(_ context.Context) (map[int64]string, error) {
	err := r.enter()
	defer r.mu.Unlock()
	if err != nil {
		return nil, err
	}
	out := make(map[int64]string, len(r.names))
	for k, v := range r.names {
		out[k] = v
	}
	return out, nil
}

type writerRepo struct{ *memStore }

func (r writerRepo) Profiles(_ context.Context, ids []int64) (map[int64]entity.WriterProfile, error) {
	err := r.enter()
	defer r.mu.Unlock()
	if err != nil {
		return nil, err
	}
	out := map[int64]entity.WriterProfile{}
	for _, id := range ids {
		if p, ok := r.writers[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

type linkRepo struct{ *memStore }

func (r linkRepo) sorted(keep func(entity.CommunityArticleLink) bool) []entity.CommunityArticleLink {
	out := []entity.CommunityArticleLink{}
	for _, l := range r.links {
		if keep(l) {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].LinkedAt.Equal(out[j].LinkedAt) {
			return out[i].LinkedAt.After(out[j].LinkedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (r linkRepo) ListByCommunity(_ context.Context, communityID int64) ([]entity.CommunityArticleLink, error) {
	err := r.enter()
	defer r.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return r.sorted(func(l entity.CommunityArticleLink) bool { return l.CommunityID == communityID }), nil
}

func (r linkRepo) ListByUser(_ context.Context, userID, communityID int64) ([]entity.CommunityArticleLink, error) {
	err := r.enter()
	defer r.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return r.sorted(func(l entity.CommunityArticleLink) bool {
		return l.UserID == userID && l.CommunityID == communityID
	}), nil
}

// Create enforces the (community, article) uniqueness the way the database constraint does.
func (r linkRepo) Create(_ context.Context, link entity.CommunityArticleLink) (bool, error) {
	err := r.enter()
	defer r.mu.Unlock()
	if err != nil {
		return false, err
	}
	for _, l := range r.links {
		if l.CommunityID == link.CommunityID && l.ArticleID == link.ArticleID {
			return false, nil
		}
	}
	link.ID = int64(len(r.links) + 1)
	r.links = append(r.links, link)
	return true, nil
}

func (r linkRepo) Delete(_ context.Context, communityID, articleID, userID int64) (bool, error) {
	err := r.enter()
	defer r.mu.Unlock()
	if err != nil {
		return false, err
	}
	for i, l := range r.links {
		if l.CommunityID == communityID && l.ArticleID == articleID && l.UserID == userID {
			r.links = append(r.links[:i], r.links[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

/*────────────────────  fixture  ────────────────────*/

var now = time.Date(2025, 7, 20, 12, 0, 0, 0, time.UTC)

const (
	catTech    int64 = 1
	catSports  int64 = 2
	catMusic   int64 = 3
	catCooking int64 = 4
	catStale   int64 = 99

	communityMain  int64 = 10
	communityFood  int64 = 11
	communityEmpty int64 = 12

	userAna int64 = 1
	userBen int64 = 2
	userCy  int64 = 3 // has no profile row
)

// fixture builds the shared scenario:
//
//	community 10 curates {Tech, Sports}; 11 curates {Cooking}; 12 has no links.
//	links in 10, newest first: 999 (article gone), 102, 104, 103, 101.
//	article 104 is ten days old; 103 carries a stale category id.
func fixture() *memStore {
	st := newStore()
	st.names = map[int64]string{catTech: "Tech", catSports: "Sports", catMusic: "Music", catCooking: "Cooking"}
	st.writers = map[int64]entity.WriterProfile{
		userAna: {UserID: userAna, Username: "ana", Name: "Ana", Lastname: "Diaz", ProfileImage: "ana.png"},
		userBen: {UserID: userBen, Username: "ben", Name: "Ben", Lastname: "Ode"},
	}
	st.communities = map[int64]*entity.Community{
		communityMain:  {ID: communityMain, Name: "sport & tech", CreatorID: userAna},
		communityFood:  {ID: communityFood, Name: "kitchen", CreatorID: userBen},
		communityEmpty: {ID: communityEmpty, Name: "quiet", CreatorID: userBen},
	}
	st.communityCats = map[int64][]int64{
		communityMain:  {catTech, catSports},
		communityFood:  {catCooking},
		communityEmpty: {catTech},
	}

	addArticle := func(id, writer int64, age time.Duration, cats ...int64) {
		st.articles[id] = &entity.Article{
			ID: id, WriterID: writer, Title: "article", Text: "body",
			Views: id, CreatedAt: now.Add(-age),
		}
		st.articleCats[id] = cats
	}
	addArticle(100, userAna, time.Hour, catSports, catMusic)
	addArticle(101, userAna, 48*time.Hour, catTech)
	addArticle(102, userBen, 72*time.Hour, catMusic)
	addArticle(103, userBen, 24*time.Hour, catSports, catStale)
	addArticle(104, userAna, 10*24*time.Hour, catTech)
	addArticle(105, userCy, 2*time.Hour, catTech)

	link := func(id, articleID, userID int64, ago time.Duration) {
		st.links = append(st.links, entity.CommunityArticleLink{
			ID: id, CommunityID: communityMain, ArticleID: articleID, UserID: userID, LinkedAt: now.Add(-ago),
		})
	}
	link(1, 101, userAna, 5*time.Hour)
	link(2, 103, userBen, 4*time.Hour)
	link(3, 104, userAna, 3*time.Hour)
	link(4, 102, userBen, 2*time.Hour)
	link(5, 999, userAna, time.Hour)

	st.saved = map[int64][]int64{userAna: {103, 105}}
	return st
}

func newService(st *memStore) *community.Service {
	return &community.Service{
		Articles:    articleRepo{st},
		Communities: communityRepo{st},
		Categories:  categoryRepo{st},
		Writers:     writerRepo{st},
		Links:       linkRepo{st},
		Now:         func() time.Time { return now },
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func articleIDs(records []entity.ArticleFeedRecord) []int64 {
	ids := make([]int64, len(records))
	for i, r := range records {
		ids[i] = r.ArticleID
	}
	return ids
}

package service

import (
	"cmp"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/templui/studytracker/internal/markdown"
)

// HelpPage is one rendered section of the help page.
type HelpPage struct {
	Slug  string
	Title string
	Order int
	HTML  string
}

// HelpService renders content/help/*.md once and caches the result.
type HelpService struct {
	parser  *markdown.Parser
	content fs.FS

	once  sync.Once
	pages []HelpPage
	err   error
}

func NewHelpService(content fs.FS) *HelpService {
	return &HelpService{
		parser:  markdown.NewParser(),
		content: content,
	}
}

func (s *HelpService) Pages() ([]HelpPage, error) {
	s.once.Do(func() {
		s.pages, s.err = s.load()
	})
	return s.pages, s.err
}

func (s *HelpService) load() ([]HelpPage, error) {
	files, err := fs.Glob(s.content, "help/*.md")
	if err != nil {
		return nil, err
	}

	pages := make([]HelpPage, 0, len(files))
	for _, file := range files {
		source, err := fs.ReadFile(s.content, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}

		doc, err := s.parser.Parse(source)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", file, err)
		}

		slug := strings.TrimSuffix(path.Base(file), ".md")
		page := HelpPage{
			Slug: slug,
			HTML: string(doc.HTML),
		}

		title, ok := doc.Meta.String("title")
		if ok {
			page.Title = title
		} else {
			page.Title = titleFromSlug(slug)
		}

		order, ok := doc.Meta.Int("order")
		if ok {
			page.Order = order
		}

		pages = append(pages, page)
	}

	slices.SortStableFunc(pages, func(a, b HelpPage) int {
		return cmp.Or(cmp.Compare(a.Order, b.Order), strings.Compare(a.Title, b.Title))
	})
	return pages, nil
}

func titleFromSlug(slug string) string {
	slug = strings.NewReplacer("-", " ", "_", " ").Replace(slug)
	return cases.Title(language.English).String(strings.Join(strings.Fields(slug), " "))
}

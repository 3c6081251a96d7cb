package views

import (
	"fmt"

	"adminsearch/internal/search"
)

// SearchRenderers returns the styled header and item renderers for the
// composer
func SearchRenderers(styles *Styles) search.Renderers {
	return search.Renderers{
		Header: func(section search.Section, first bool) string {
			title := section.Title
			if title == "" {
				title = section.Key
			}
			header := styles.HeaderStyle(section.Color).Render(title)
			if first {
				return header
			}
			return "\n" + header
		},
		Item: func(item search.Item) string {
			return RenderItem(styles, item)
		},
	}
}

// RenderItem renders an item name followed by its status badge, or by its
// product count for items that carry one
func RenderItem(styles *Styles, item search.Item) string {
	if n, ok := item.MetaInt("productCount"); ok {
		return fmt.Sprintf("%s %s %s",
			item.Name,
			styles.StatusStyle(item.Status).Render("["+item.Status.DisplayText()+"]"),
			styles.Count.Render(fmt.Sprintf("(%d products)", n)))
	}
	return fmt.Sprintf("%s %s", item.Name,
		styles.StatusStyle(item.Status).Render("["+item.Status.DisplayText()+"]"))
}

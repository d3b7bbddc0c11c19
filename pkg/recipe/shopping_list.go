package recipe

import (
	"fmt"
	"strings"

	"foodgram/domain"
	"foodgram/entities"
)

const shoppingListHeader = "Shopping list:\n"

// AggregateShoppingList groups rows by ingredient name and sums amounts.
// Groups keep the unit of their first row and appear in first-seen order.
func AggregateShoppingList(rows []entities.ShoppingListRow) []domain.ShoppingListItem {
	index := make(map[string]int, len(rows))
	items := make([]domain.ShoppingListItem, 0, len(rows))

	for _, row := range rows {
		if i, ok := index[row.Name]; ok {
			items[i].Amount += row.Amount
			continue
		}
		index[row.Name] = len(items)
		items = append(items, domain.ShoppingListItem{
			Name:            row.Name,
			MeasurementUnit: row.MeasurementUnit,
			Amount:          row.Amount,
		})
	}
	return items
}

func RenderShoppingList(items []domain.ShoppingListItem) string {
	var b strings.Builder
	b.WriteString(shoppingListHeader)
	for n, item := range items {
		fmt.Fprintf(&b, "%d. %s - %d %s\n", n+1, item.Name, item.Amount, item.MeasurementUnit)
	}
	return b.String()
}

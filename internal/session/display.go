// =============================================================================
// Point-of-Sale Invoice Generator - Session Display Helpers
// =============================================================================
//
// Console rendering for the menu, the catalog listing and the cart table.
// Pure output; no state transitions happen here.
//
// =============================================================================

package session

import (
	"strings"
)

// consoleWidth is the fixed width of banners and separators.
const consoleWidth = 50

// printMenu renders the main option menu.
func (s *Session) printMenu() {
	s.p.Println("")
	s.p.Println("┏━━━━━━┓")
	s.p.Println("┃ Menu ┃")
	s.p.Println("┣━━━━━━┻━━━━━━━━━━━━━━━━━━━━━┓")
	s.p.Println("┃ 1. Start/Continue Shopping ┃")
	s.p.Println("┃ 2. List Services Offered   ┃")
	s.p.Println("┃ 3. View Cart               ┃")
	s.p.Println("┃ 4. Proceed to Checkout     ┃")
	s.p.Println("┃ 5. Remove Item from Cart   ┃")
	s.p.Println("┃ 6. Exit                    ┃")
	s.p.Println("┗━━━━━━━━━━━━━━━━━━━━━━━━━━━━┛")
	s.p.Println("")
}

// showServices lists the catalog with aligned prices.
func (s *Session) showServices() {
	s.p.Println("")
	s.p.Println(strings.Repeat("-", consoleWidth))
	title := "We provide below services"
	pad := consoleWidth - 2 - len(title)
	s.p.Printf("<%s%s%s>\n", strings.Repeat("-", pad/2), title, strings.Repeat("-", pad-pad/2))
	for _, entry := range s.catalog.Entries() {
		s.p.Printf("%-30s : $%s\n", entry.Name, entry.Price.StringFixed(2))
	}
	s.p.Printf("<%s>\n", strings.Repeat("-", consoleWidth-2))
}

// showCart renders the cart table and subtotal box, or an empty-cart notice.
func (s *Session) showCart() {
	if s.cart.Len() == 0 {
		s.p.Println("🔺Your 🛒 is Empty!")
		return
	}

	s.p.Println("")
	border := "┣" + strings.Repeat("━", 32) + "╋" + strings.Repeat("━", 12) + "╋" + strings.Repeat("━", 10) + "┫"
	s.p.Println("┏" + strings.Repeat("━", 32) + "┳" + strings.Repeat("━", 12) + "┳" + strings.Repeat("━", 10) + "┓")
	s.p.Printf("┃ %-30s ┃ %10s ┃ %8s ┃\n", "Item", "Item Price", "Quantity")
	s.p.Println(border)
	for _, line := range s.cart.Lines() {
		s.p.Printf("┃ %-30s ┃ %10s ┃ %8d ┃\n", line.Service, line.UnitPrice.StringFixed(2), line.Quantity)
	}
	s.p.Println("┗" + strings.Repeat("━", 32) + "┻" + strings.Repeat("━", 12) + "┻" + strings.Repeat("━", 10) + "┛")

	subtotal := s.cart.Subtotal().StringFixed(2)
	s.p.Println("┏━━━━━━━━━━━━━━━━━━━━━┓")
	s.p.Printf("┃ SubTotal:%10s ┃\n", subtotal)
	s.p.Println("┗━━━━━━━━━━━━━━━━━━━━━┛")
	s.p.Println("")
}

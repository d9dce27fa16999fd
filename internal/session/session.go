// =============================================================================
// Point-of-Sale Invoice Generator - Session Module
// =============================================================================
//
// The session is the menu-driven interaction loop: an iterative state
// machine over {MainMenu, Shopping, CartView, Checkout, RemoveFlow, Exit}.
// Each state handler runs its own prompt loop and returns the next state;
// there is no recursive re-entry, so repeated invalid input cannot grow the
// stack.
//
// STATE TRANSITIONS:
//   MainMenu  --1--> Shopping    --Q/N--> MainMenu
//   MainMenu  --2--> (catalog listing, stays in MainMenu)
//   MainMenu  --3--> CartView    -------> MainMenu
//   MainMenu  --4--> Checkout    --N/err-> MainMenu, --Y--> invoice
//   MainMenu  --5--> RemoveFlow  -------> MainMenu
//   MainMenu  --6--> Exit
//
// A completed checkout asks whether to continue; "Y" ends the run with a
// restart signal so the caller begins a fresh session for a new customer.
//
// =============================================================================

package session

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Patel-Smit/InvoicePDFGenerator/internal/cart"
	"github.com/Patel-Smit/InvoicePDFGenerator/internal/catalog"
	"github.com/Patel-Smit/InvoicePDFGenerator/internal/customer"
	"github.com/Patel-Smit/InvoicePDFGenerator/internal/invoice"
	"github.com/Patel-Smit/InvoicePDFGenerator/internal/prompt"
	log "github.com/sirupsen/logrus"
)

// Farewell is printed on every exit path.
const Farewell = "Thanks for hanging out with us! Until next time, stay awesome! 🚀 Good Bye! 👋🏻"

// State identifies a position in the session state machine.
type State int

const (
	StateMainMenu State = iota
	StateShopping
	StateCartView
	StateCheckout
	StateRemoveFlow
	StateExit
)

// Checkouter processes a confirmed checkout: it renders the invoice,
// appends the sales ledger row and advances the invoice counter.
type Checkouter interface {
	Checkout(rec customer.Record, crt *cart.Cart) (invoice.Receipt, error)
}

// Session owns one customer's interaction: the cart, the catalog view and
// the state machine driving both.
type Session struct {
	p        *prompt.Prompter
	catalog  *catalog.Catalog
	cart     *cart.Cart
	customer customer.Record
	checkout Checkouter

	// restart is set when a completed checkout should roll into a fresh
	// session for the next customer.
	restart bool
}

// New creates a session for one collected customer record.
func New(p *prompt.Prompter, cat *catalog.Catalog, rec customer.Record, checkout Checkouter) *Session {
	return &Session{
		p:        p,
		catalog:  cat,
		cart:     cart.New(),
		customer: rec,
		checkout: checkout,
	}
}

// Cart exposes the session's cart, mainly for tests.
func (s *Session) Cart() *cart.Cart {
	return s.cart
}

// Run drives the state machine until exit. It returns restart=true when the
// operator completed a checkout and chose to serve another customer.
func (s *Session) Run() (bool, error) {
	state := StateMainMenu
	for state != StateExit {
		var err error
		switch state {
		case StateMainMenu:
			state, err = s.mainMenu()
		case StateShopping:
			state, err = s.shop()
		case StateCartView:
			s.showCart()
			state = StateMainMenu
		case StateCheckout:
			state, err = s.runCheckout()
		case StateRemoveFlow:
			state, err = s.removeFlow()
		}
		if err != nil {
			return false, err
		}
	}

	s.p.Println("")
	s.p.Println(Farewell)
	s.p.Println("")
	return s.restart, nil
}

// mainMenu displays the option menu and dispatches the selection.
func (s *Session) mainMenu() (State, error) {
	s.printMenu()
	input, err := s.p.Ask("Select your option: ")
	if err != nil {
		return StateExit, err
	}

	switch input {
	case "1":
		return StateShopping, nil
	case "2":
		s.showServices()
		return StateMainMenu, nil
	case "3":
		return StateCartView, nil
	case "4":
		return StateCheckout, nil
	case "5":
		if s.cart.Len() == 0 {
			s.p.Println("")
			s.p.Println("🔺Your 🛒 is Empty!")
			return StateMainMenu, nil
		}
		return StateRemoveFlow, nil
	case "6":
		return StateExit, nil
	default:
		s.p.Println("❌ Invalid Selection!")
		return StateMainMenu, nil
	}
}

// shop runs the shopping sub-loop: free-text "Service xQuantity" input with
// catalog listing, quit-to-menu and fuzzy suggestions for near misses.
func (s *Session) shop() (State, error) {
	for {
		s.p.Println("\nL. List offered services")
		s.p.Println("Q. Quit to the main menu")
		s.p.Println("Format: \"Service xQuantity\"")
		s.p.Println("")

		input, err := s.p.Ask("Select Service : ")
		if err != nil {
			return StateExit, err
		}

		switch strings.ToUpper(input) {
		case "L":
			s.showServices()
			continue
		case "Q":
			return StateMainMenu, nil
		case "":
			s.p.Println("\n⚠️ Empty Selection!")
			continue
		}

		name, quantity := parseSelection(input)
		entry, ok := s.catalog.Find(name)
		if !ok {
			s.suggest(name)
			continue
		}

		line, merged := s.cart.Add(entry.Name, entry.Price, quantity)
		if merged {
			s.p.Printf("✅ %s has been updated in cart! Quantity: %d\n", line.Service, line.Quantity)
		} else {
			s.p.Printf("✅ %s has been added to cart! Quantity: %d\n", line.Service, line.Quantity)
		}
		log.WithFields(log.Fields{
			"service":  line.Service,
			"quantity": line.Quantity,
			"merged":   merged,
		}).Debug("cart add")

		next, err := s.askYesNo("\nDo you want to add service? (Y/N): ")
		if err != nil {
			return StateExit, err
		}
		if !next {
			return StateMainMenu, nil
		}
	}
}

// removeFlow removes one service, partially or fully, from the cart.
func (s *Session) removeFlow() (State, error) {
	s.p.Println("")
	input, err := s.p.Ask("Select the item you want to remove: ")
	if err != nil {
		return StateExit, err
	}
	name := strings.ToLower(input)

	if name == "" {
		s.p.Println("❗Empty selection!")
		return StateMainMenu, nil
	}

	line, ok := s.cart.Get(name)
	if !ok {
		s.p.Printf("❗%s not found in the cart.\n", name)
		return StateMainMenu, nil
	}

	// A single unit is removed without asking.
	if line.Quantity == 1 {
		if _, _, err := s.cart.RemoveQuantity(line.Service, 1); err != nil {
			return StateExit, err
		}
		s.p.Printf("✅ %s has been removed from cart\n", line.Service)
		return StateMainMenu, nil
	}

	for {
		s.p.Printf("You have %d %s\n", line.Quantity, line.Service)
		countInput, err := s.p.Ask("How many you want to remove? : ")
		if err != nil {
			return StateExit, err
		}

		count, convErr := strconv.Atoi(countInput)
		if convErr != nil || count < 0 {
			s.p.Println("❌ Invalid Quantity! (Only numbers)")
			continue
		}

		updated, deleted, err := s.cart.RemoveQuantity(line.Service, count)
		if errors.Is(err, cart.ErrBadQuantity) {
			s.p.Println("❌ Incorrect Quantity!")
			continue
		}
		if err != nil {
			return StateExit, err
		}

		if deleted {
			s.p.Printf("✅ %s has been removed from cart\n", line.Service)
		} else {
			s.p.Printf("✅ %s has been updated! Quantity: %d\n", updated.Service, updated.Quantity)
		}
		return StateMainMenu, nil
	}
}

// runCheckout confirms the cart and hands it to the checkout processor. A
// generation failure is reported and control returns to the main menu with
// the invoice counter untouched.
func (s *Session) runCheckout() (State, error) {
	if s.cart.Len() == 0 {
		s.p.Println("🔺Your 🛒 is Empty!")
		return StateMainMenu, nil
	}

	s.showCart()
	confirmed, err := s.askYesNo(s.customer.Name + ", confirm checkout? (Y/N): ")
	if err != nil {
		return StateExit, err
	}
	if !confirmed {
		return StateMainMenu, nil
	}

	receipt, err := s.checkout.Checkout(s.customer, s.cart)
	if err != nil {
		log.WithError(err).Error("invoice generation failed")
		s.p.Printf("❌ Could not generate the invoice: %v\n", err)
		return StateMainMenu, nil
	}

	s.p.Println("")
	s.p.Printf("Invoice %s saved to %s\n", receipt.InvoiceNumber, receipt.PDFPath)
	s.p.Println("Thank you for shopping with us! 🛍️")
	s.p.Println("")

	again, err := s.askYesNo("Do you want to continue? (Y/N): ")
	if err != nil {
		return StateExit, err
	}
	if again {
		s.cart.Clear()
		s.restart = true
	}
	return StateExit, nil
}

// suggest offers close-spelling catalog names for an unmatched service.
func (s *Session) suggest(name string) {
	suggestions := s.catalog.Suggest(name)
	if len(suggestions) == 0 {
		s.p.Println("Item not found!")
		return
	}
	s.p.Printf("Do you mean something like: %s?\n", strings.Join(suggestions, ", "))
}

// askYesNo loops until the operator answers Y or N.
func (s *Session) askYesNo(label string) (bool, error) {
	for {
		input, err := s.p.Ask(label)
		if err != nil {
			return false, err
		}
		switch strings.ToUpper(input) {
		case "Y":
			return true, nil
		case "N":
			return false, nil
		default:
			s.p.Println("❌ Invalid Input!")
		}
	}
}

// parseSelection splits a shopping input into service name and quantity.
// The " xQuantity" suffix is optional; an unparseable or sub-1 quantity
// falls back to 1. A single " x" separator always strips the suffix from
// the name, even when the quantity does not parse; only an ambiguous input
// with several separators is taken as a literal name.
func parseSelection(input string) (string, int) {
	parts := strings.Split(input, " x")
	if len(parts) == 2 {
		name := strings.TrimSpace(parts[0])
		quantity, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || quantity < 1 {
			quantity = 1
		}
		return name, quantity
	}
	return input, 1
}

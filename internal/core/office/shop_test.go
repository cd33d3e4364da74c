package office

import (
	"testing"
	"time"

	"officesim/internal/core/model"
)

func TestBuy_Cooldown(t *testing.T) {
	office := newTestOffice(t, 20)
	employee := mustAdd(t, office)
	energy := employee.Needs().Energy()

	if !office.Boost() {
		t.Fatal("Boost failed")
	}
	if office.Money() != 50 {
		t.Errorf("Money = %f, want 50", office.Money())
	}
	if office.Cooldown(ShopBoost) != 10*time.Second {
		t.Errorf("Cooldown = %v, want 10s", office.Cooldown(ShopBoost))
	}
	if want := NewNeed(energy + 0.4).Value(); employee.Needs().Energy() != want {
		t.Errorf("energy = %f, want %f", employee.Needs().Energy(), want)
	}
	if office.Boost() {
		t.Error("Boost succeeded during its cooldown")
	}

	if !office.Hire() {
		t.Fatal("Hire failed")
	}
	if office.EmployeeCount() != 2 {
		t.Errorf("EmployeeCount = %d, want 2", office.EmployeeCount())
	}
	if office.Money() != 20 {
		t.Errorf("Money = %f, want 20", office.Money())
	}

	for i := 0; i < 1000 && office.Cooldown(ShopBoost) > 0; i++ {
		office.Tick()
	}
	if office.Cooldown(ShopBoost) != 0 {
		t.Fatalf("Cooldown = %v, want 0", office.Cooldown(ShopBoost))
	}
	if office.Cooldown(ShopHire) != 0 {
		t.Errorf("hire cooldown = %v, want 0", office.Cooldown(ShopHire))
	}

	money := office.Money()
	if office.Boost() {
		t.Error("Boost succeeded without enough money")
	}
	if office.Money() != money {
		t.Errorf("Money = %f, want %f", office.Money(), money)
	}
}

func TestHire_PoolFull(t *testing.T) {
	office := newTestOffice(t, 21)
	for i := 0; i < 16; i++ {
		mustAdd(t, office)
	}

	if office.Hire() {
		t.Error("Hire succeeded with no free workstation")
	}
	if office.Money() != 100 {
		t.Errorf("Money = %f, want 100", office.Money())
	}
}

func TestBuy_NotRunning(t *testing.T) {
	office := newTestOffice(t, 22)
	office.SetGameState(GameMenu)

	if office.Boost() {
		t.Error("Boost succeeded while the game is paused")
	}
}

func TestSpendAndApply(t *testing.T) {
	office := newTestOffice(t, 23)

	if office.SpendAndApply(-1, model.Effect{}) {
		t.Error("negative cost accepted")
	}
	if office.SpendAndApply(101, model.Effect{}) {
		t.Error("cost above balance accepted")
	}
	if !office.SpendAndApply(100, model.NewEffect(0, 0, 0, 0, 5, 0)) {
		t.Fatal("affordable purchase refused")
	}
	if office.Money() != 5 {
		t.Errorf("Money = %f, want 5", office.Money())
	}
}

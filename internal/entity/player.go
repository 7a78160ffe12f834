package entity

import (
	"github.com/vovakirdan/horde/internal/config"
	"github.com/vovakirdan/horde/internal/core"
	"github.com/vovakirdan/horde/internal/world"
)

// Player is the controlled survivor. It stays in its collection after
// death so it can still be drawn; Dead reports the end of the run.
type Player struct {
	body
	cfg  config.PlayerConfig
	phys config.PhysicsConfig

	health int
	clip   int // Rounds loaded
	ammo   int // Rounds in reserve
	facing int // -1 left, 1 right

	walkDir   int
	walkTicks int
	jump      bool
	fire      bool
	reload    bool
	cooldown  int
	dead      bool
}

// NewPlayer creates a player with its top-left corner at (x, y).
func NewPlayer(x, y int, cfg config.PlayerConfig, phys config.PhysicsConfig) *Player {
	p := &Player{
		cfg:    cfg,
		phys:   phys,
		health: cfg.Health,
		facing: 1,
	}
	p.box = core.NewRect(x, y, cfg.Width, cfg.Height)
	p.clip = min(cfg.ClipSize, cfg.StartAmmo)
	p.ammo = cfg.StartAmmo - p.clip
	return p
}

// Walk keeps the player moving in dir (-1 or 1) for the configured number
// of ticks. Terminals report key presses, not releases.
func (p *Player) Walk(dir int) {
	p.walkDir = core.Sign(dir)
	p.walkTicks = p.cfg.WalkHold
	if p.walkDir != 0 {
		p.facing = p.walkDir
	}
}

// Jump queues a jump for the next tick; it only happens on the ground.
func (p *Player) Jump() { p.jump = true }

// Fire queues a shot for the next tick.
func (p *Player) Fire() { p.fire = true }

// Reload queues a reload for the next tick.
func (p *Player) Reload() { p.reload = true }

// Tick moves the player and resolves its queued intents.
func (p *Player) Tick(w *world.World) {
	defer p.clearIntents()

	if p.dead {
		p.vx = 0
		p.move(w, p.phys)
		return
	}

	if p.walkTicks > 0 {
		p.vx = p.walkDir * p.cfg.Speed
		p.walkTicks--
	} else {
		p.vx = 0
	}
	if p.jump && p.grounded {
		p.vy = p.cfg.JumpImpulse
	}
	p.move(w, p.phys)

	if p.cooldown > 0 {
		p.cooldown--
	}
	if p.reload || (p.fire && p.clip == 0) {
		p.doReload()
	}
	if p.fire && p.clip > 0 && p.cooldown == 0 {
		w.Players.Add(newBullet(p, p.cfg))
		p.clip--
		p.cooldown = p.cfg.FireCooldown
	}

	if p.fellOut(w) {
		p.health = 0
		p.dead = true
	}
}

func (p *Player) clearIntents() {
	p.jump, p.fire, p.reload = false, false, false
}

func (p *Player) doReload() {
	n := min(p.cfg.ClipSize-p.clip, p.ammo)
	p.clip += n
	p.ammo -= n
}

// Damage removes health; reaching zero kills the player.
func (p *Player) Damage(n int) {
	if p.dead {
		return
	}
	p.health = max(0, p.health-n)
	if p.health == 0 {
		p.dead = true
	}
}

// Heal restores health up to the maximum.
func (p *Player) Heal(n int) {
	if p.dead {
		return
	}
	p.health = min(p.cfg.Health, p.health+n)
}

// AddAmmo adds rounds to the reserve.
func (p *Player) AddAmmo(n int) {
	p.ammo += n
}

func (p *Player) Health() int    { return p.health }
func (p *Player) MaxHealth() int { return p.cfg.Health }
func (p *Player) Clip() int      { return p.clip }
func (p *Player) Ammo() int      { return p.ammo }
func (p *Player) Facing() int    { return p.facing }
func (p *Player) Dead() bool     { return p.dead }
func (p *Player) Grounded() bool { return p.grounded }

func (p *Player) Rect() *core.Rect { return &p.box }
func (p *Player) Solid() bool      { return false }
func (p *Player) Kind() string     { return "player" }
func (p *Player) Alive() bool      { return true }

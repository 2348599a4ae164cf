// Package art holds the ASCII portraits drawn for each species and mood.
package art

import "github.com/gitpet/gitpet/internal/pet"

var portraits = map[pet.Species]map[pet.Mood]string{
	pet.SpeciesBlob: {
		pet.MoodEcstatic: `
   \(^o^)/
    \_■_/
    /| |\
   / | | \
`,
		pet.MoodHappy: `
    ◠ ◡ ◠
     \_/
    /|■|\
     / \
`,
		pet.MoodContent: `
    ◠ ‿ ◠
     \_/
    /|■|\
     / \
`,
		pet.MoodNeutral: `
    ◠ _ ◠
     \_/
    /|■|\
     / \
`,
		pet.MoodSad: `
    ◠ ︵ ◠
     \_/
    /|■|\
     / \
`,
		pet.MoodHungry: `
    ◠ o ◠
     \○/
    /|■|\
     / \
`,
		pet.MoodTired: `
    - _ -
     \_/
    /|■|\
     / \
`,
		pet.MoodCritical: `
    x _ x
     \_/
    /|■|\
     / \
`,
		pet.MoodDead: `
    x _ x
     \_/
    /|■|\   💀
     / \
`,
		pet.MoodGhost: `
   ~◠ ◡ ◠~
    ~\_/~   👻
   ~/|■|\~
    ~~~~~
`,
	},
	pet.SpeciesPixel: {
		pet.MoodEcstatic: `
    /\_/\
   ( ^.^ ) ~♪
    > ^ <
`,
		pet.MoodHappy: `
    /\_/\
   ( ^.^ )
    > ^ <
`,
		pet.MoodContent: `
    /\_/\
   ( -.- )
    > ^ <
`,
		pet.MoodNeutral: `
    /\_/\
   ( o.o )
    > ^ <
`,
		pet.MoodSad: `
    /\_/\
   ( ;.; )
    > ^ <
`,
		pet.MoodHungry: `
    /\_/\
   ( O.O ) !
    > ^ <
`,
		pet.MoodTired: `
    /\_/\
   ( -.- ) zzz
    > ^ <
`,
		pet.MoodCritical: `
    /\_/\
   ( x.x )
    > ^ <
`,
		pet.MoodDead: `
    /\_/\  💀
   ( x.x )
    > ^ <
`,
		pet.MoodGhost: `
   ~/\_/\~ 👻
   ( o.o )
   ~>~~~<~
`,
	},
	pet.SpeciesBotty: {
		pet.MoodEcstatic: `
    [^_^]
   -|===|-  ✓✓
    /   \
`,
		pet.MoodHappy: `
    [^_^]
   -|===|-
    /   \
`,
		pet.MoodContent: `
    [=_=]
   -|===|-
    /   \
`,
		pet.MoodNeutral: `
    [o_o]
   -|===|-
    /   \
`,
		pet.MoodSad: `
    [T_T]
   -|===|-
    /   \
`,
		pet.MoodHungry: `
    [O_O]
   -|===|-  ⚠
    /   \
`,
		pet.MoodTired: `
    [-_-]
   -|===|-  zzz
    /   \
`,
		pet.MoodCritical: `
    [X_X]
   -|===|-  ⚠⚠
    /   \
`,
		pet.MoodDead: `
    [X_X]  💀
   -|===|-
    /   \
`,
		pet.MoodGhost: `
   ~[o_o]~ 👻
   ~|===|~
   ~/   \~
`,
	},
	pet.SpeciesOcto: {
		pet.MoodEcstatic: `
     ,---.
    ( ^o^ )  🔀
   //|||||\\
`,
		pet.MoodHappy: `
     ,---.
    ( ^.^ )
   //|||||\\
`,
		pet.MoodContent: `
     ,---.
    ( -.- )
   //|||||\\
`,
		pet.MoodNeutral: `
     ,---.
    ( o.o )
   //|||||\\
`,
		pet.MoodSad: `
     ,---.
    ( ;-; )
   //|||||\\
`,
		pet.MoodHungry: `
     ,---.
    ( O.O )  !
   //|||||\\
`,
		pet.MoodTired: `
     ,---.
    ( -.- ) zzz
   //|||||\\
`,
		pet.MoodCritical: `
     ,---.
    ( x.x )
   //|||||\\
`,
		pet.MoodDead: `
     ,---.   💀
    ( x.x )
   //|||||\\
`,
		pet.MoodGhost: `
    ~,---,~ 👻
   ~( o.o )~
   ~//|||\\~
`,
	},
	pet.SpeciesFoxy: {
		pet.MoodEcstatic: `
    /\   /\
   (  ^w^  ) ~♥
    \\_v_//
`,
		pet.MoodHappy: `
    /\   /\
   (  ^w^  )
    \\_v_//
`,
		pet.MoodContent: `
    /\   /\
   (  -w-  )
    \\_v_//
`,
		pet.MoodNeutral: `
    /\   /\
   (  o.o  )
    \\_v_//
`,
		pet.MoodSad: `
    /\   /\
   (  ;w;  )
    \\_v_//
`,
		pet.MoodHungry: `
    /\   /\
   (  OwO  )  ?
    \\_v_//
`,
		pet.MoodTired: `
    /\   /\
   (  -.-  ) zzz
    \\_v_//
`,
		pet.MoodCritical: `
    /\   /\
   (  x.x  )
    \\_v_//
`,
		pet.MoodDead: `
    /\   /\  💀
   (  x.x  )
    \\_v_//
`,
		pet.MoodGhost: `
   ~/\~~~~/\~ 👻
   (  o.o  )
   ~\\_v_//~
`,
	},
}

// For returns the portrait for a species in a given mood. Unknown species
// fall back to blob; unknown moods fall back to neutral.
func For(species pet.Species, mood pet.Mood) string {
	byMood, ok := portraits[species]
	if !ok {
		byMood = portraits[pet.SpeciesBlob]
	}
	if a, ok := byMood[mood]; ok {
		return a
	}
	return byMood[pet.MoodNeutral]
}

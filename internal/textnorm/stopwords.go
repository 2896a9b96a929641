package textnorm

import "strings"

// Base French stop words plus interjections and fillers common in rap
// lyrics (ad-libs, hesitation sounds, discourse particles).
var stopWordList = `
le la les un une des du de d l au aux
je tu il elle on nous vous ils elles
me te se moi toi soi lui leur eux
mon ma mes ton ta tes son sa ses notre nos votre vos leurs
ce cet cette ces ça cela ceci celui celle ceux celles
qui que quoi dont où qu
et ou mais donc or ni car puis ensuite alors ainsi
ne pas plus moins très trop peu assez aussi encore jamais toujours
être suis es est sommes êtes sont était étais été étant sera seront
avoir ai as a avons avez ont avait avais eu ayant aura auront
faire fais fait faisons faites font faisait
aller vais vas va allons allez vont allait
pouvoir peux peut pouvons pouvez peuvent pouvait
vouloir veux veut voulons voulez veulent voulait
devoir dois doit devons devez doivent devait
dans sur sous vers chez par pour avec sans contre entre parmi
avant après pendant depuis durant dès jusque
si comme quand lorsque puisque parce
y en là ici deja déjà tout tous toute toutes rien personne chaque
autre autres même mêmes tel telle quel quelle quels quelles
c n s t m j qu
ouais wesh yo hey oh ah eh nan nah bah pah tah rah
yeah yah ya uh huh han hein
`

var stopWords = func() map[string]struct{} {
	set := map[string]struct{}{}
	for _, w := range strings.Fields(stopWordList) {
		set[w] = struct{}{}
	}
	return set
}()

// IsStopWord reports whether the lowercase token is excluded from
// vocabulary counts.
func IsStopWord(word string) bool {
	_, ok := stopWords[word]
	return ok
}

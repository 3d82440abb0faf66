package extract

import "strings"

// defaultStopwords is the builtin filter for competitor candidates:
// function words, common verbs and adjectives, geography, and the
// generic commerce vocabulary that LLM answers lean on. Anything here
// is never treated as a brand mention.
var defaultStopwords = strings.Fields(`
a about above across after again against all almost alone along already
also although always am among amongst an and another any anybody anyone
anything anywhere are around as at away back be became because become
becomes been before behind being below beneath beside besides between
beyond both but by came can cannot certain certainly come comes could
did do does doing done down during each either else elsewhere enough
even ever every everybody everyone everything everywhere except few for
from further had has have having he hence her here hers herself him
himself his how however i if in indeed inside instead into is it its
itself just keep kept last later least less let like likely made make
makes many may maybe me meanwhile might mine more moreover most mostly
much must my myself namely near neither never nevertheless next no
nobody none nor not nothing now nowhere of off often on once one only
onto or other others otherwise our ours ourselves out over own per
perhaps please quite rather really same see seem seemed seeming seems
several shall she should since so some somebody somehow someone
something sometime sometimes somewhere still such than that the their
theirs them themselves then there thereafter thereby therefore these
they this those though through throughout thus to together too toward
towards under unless until up upon us use used useful using usually
various very via was we well were what whatever when whenever where
whereas wherever whether which while who whoever whole whom whose why
will with within without would yes yet you your yours yourself
yourselves

ask asked asking begin beginning begins bring brings brought buy buying
call called calling carry change changed changes check choose choosing
chose close closed compare compared compares consider considered
contain contains continue create created creates cut decide decided
deliver delivered delivers describe described develop developed
different directly discuss discussed end ended ends expect expected
explain explained feel feels felt find finding finds follow followed
following found get gets getting give given gives giving go goes going
gone got grow growing grown happen happened happens help helped helping
helps hold holds include included includes including increase increased
keep keeps know knowing known knows lead leading leads learn learned
leave leaving list listed lists live lived lives look looked looking
looks lose lost love loved make making mean meaning means meet meets
mention mentioned mentions move moved moves need needed needs note
noted notes offer offered offering offers open opened opens order
ordered orders pay paying pays pick picked place placed places play
played point pointed points prefer preferred prefers provide provided
provides put puts rank ranked ranking ranks rate rated rates reach
read reads receive received recommend recommended recommends reduce
reduced remain remains remember report reported reports require
required requires return returned returns run running runs say saying
says search searched searches sell selling sells send sent serve
served serves set sets show showed showing shown shows spend spent
start started starting starts stay stayed stays stop stopped suggest
suggested suggests take takes taking talk talked tell telling tells
tend tends think thinking thinks try trying turn turned turns
understand understood visit visited visits want wanted wants watch
watched wear win wins wish word work worked working works write
written

able actual additional affordable amazing available average bad based
basic better big bigger biggest brief broad budget busy cheap cheaper
cheapest clean clear common complete convenient correct current daily
decent deep detailed easy effective efficient entire excellent
expensive extra fair famous fast faster fine first flexible free
friendly full general good great greater greatest happy hard high
higher highest huge ideal important impressive initial interesting
key large larger largest late leading light limited local long longer
low lower lowest main major minor modern multiple narrow national
nearby new newer newest nice notable official old older online only
overall particular perfect personal popular positive possible
powerful practical present previous primary private professional
proper public quick rare real reasonable recent regional regular
related reliable remaining right robust safe secure senior short
significant similar simple single slow small smaller smallest smart
solid special specific standard strong suitable sure tiny top total
traditional true trusted typical unique upcoming valuable varied
various vast wide wider widely worth wrong young

always annually daily early earlier earliest eight eighteen eighty
eleven fifteen fifty first five forty four fourteen fourth half
hundred million monthly nine nineteen ninety ninth often once one
quarterly second seven seventeen seventy six sixteen sixty ten tenth
third thirteen thirty thousand three times today tomorrow tonight
twelve twenty twice two week weekly weekend year yearly years
yesterday billion

africa america american asia asian australia austria bangalore
barcelona belgium berlin boston brazil britain british california
canada canadian chennai chicago china chinese cologne country
countries delhi denmark dubai dublin east eastern england english
europe european france frankfurt french german germany global hamburg
hyderabad india indian indonesia international ireland italian italy
japan japanese kolkata london madrid malaysia mexico miami milan
mumbai munich netherlands north northern norway paris poland portugal
pune region regionally rome russia seattle singapore south southern
spain spanish stuttgart sweden swiss switzerland sydney texas thailand
tokyo toronto turkey usa vienna west western world worldwide zurich

account advice agency amount answer apps area article average basis
benefit benefits brand brands budget business businesses capsule
capsules case cases category certification certifications chain chains
choice choices company companies comparison content cost costs country
coupon coupons customer customers datum delivery demand detail details
diet discount discounts dose dosage drop drops effect effects
equipment example examples experience fact factor factors feature
features food foods form formula guide guides idea industry info
information ingredient ingredients item items kind kinds label labels
level levels line list lists margin market marketing markets material
medium member members method methods mineral minerals money month name
names number numbers nutrition option options others overview
owner package packaging page pages part parts people percent
performance person pharmacy place point points policy powder price
prices pricing product products program purchase quality question
questions range rating ratings reason reasons result results retail
retailer retailers review reviews sale sales sample section selection
service services shipping shop shops side site sites size sizes source
sources store stores stuff subscription supplement supplements
supplier suppliers supply support tablet tablets team terms test
tests thing things tip tips trend trends type types unit units user
users value values variety version vendor vendors vitamin vitamins
way ways website websites

app blog browser click domain email https internet link links login
newsletter password platform podcast profile search seo server
software subscribe update upload web webshop wifi
`)
